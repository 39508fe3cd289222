package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"golang.org/x/sync/singleflight"
	"google.golang.org/api/option"

	"github.com/joyjoykids/feedback-backend/internal/logger"
	"github.com/joyjoykids/feedback-backend/internal/ttscache"
)

// ErrTTSDisabled is returned when no Google credential is configured.
// The route answers 503 in that case; synthesis is optional for the
// service as a whole.
var ErrTTSDisabled = errors.New("tts provider not configured")

const (
	defaultLanguageCode = "ko-KR"
	defaultVoiceName    = "ko-KR-Neural2-A"
	defaultSpeakingRate = 0.92
)

type SynthesisRequest struct {
	Text  string
	SSML  string // wins over Text when both are present
	Voice string
}

type TTSService interface {
	Enabled() bool
	Synthesize(ctx context.Context, req SynthesisRequest) ([]byte, error)
	Close() error
}

type ttsService struct {
	log    *logger.Logger
	client *texttospeech.Client
	cache  ttscache.Store
	group  singleflight.Group
}

// NewTTSService builds the Google Cloud Text-to-Speech provider.
// Credentials come from GOOGLE_TTS_KEY_JSON (inline service-account
// JSON) or GOOGLE_APPLICATION_CREDENTIALS (file path); with neither set
// the service starts disabled instead of failing.
func NewTTSService(log *logger.Logger, cache ttscache.Store) (TTSService, error) {
	slog := log.With("service", "TTSService")

	keyJSON := strings.TrimSpace(os.Getenv("GOOGLE_TTS_KEY_JSON"))
	credFile := strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))

	if keyJSON == "" && credFile == "" {
		return &ttsService{log: slog, cache: cache}, nil
	}

	var opts []option.ClientOption
	if keyJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(keyJSON)))
	} else {
		opts = append(opts, option.WithCredentialsFile(credFile))
	}

	client, err := texttospeech.NewClient(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("texttospeech client: %w", err)
	}
	return &ttsService{log: slog, client: client, cache: cache}, nil
}

func (s *ttsService) Enabled() bool {
	return s.client != nil
}

func (s *ttsService) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// Synthesize returns MP3 audio for the given input, serving repeats from
// the bounded cache. Concurrent identical requests collapse into one
// provider call.
func (s *ttsService) Synthesize(ctx context.Context, req SynthesisRequest) ([]byte, error) {
	if s.client == nil {
		return nil, ErrTTSDisabled
	}

	kind, input := "text", strings.TrimSpace(req.Text)
	if ssml := strings.TrimSpace(req.SSML); ssml != "" {
		kind, input = "ssml", ssml
	}
	if input == "" {
		return nil, errors.New("ssml or text is required")
	}
	voice := strings.TrimSpace(req.Voice)
	if voice == "" {
		voice = defaultVoiceName
	}

	key := ttscache.Key(kind, voice, input)
	if audio, ok := s.cache.Get(ctx, key); ok {
		s.log.Debug("TTS cache hit", "voice", voice, "bytes", len(audio))
		return audio, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		audio, err := s.synthesizeOnce(ctx, kind, input, voice)
		if err != nil {
			return nil, err
		}
		s.cache.Set(ctx, key, audio)
		return audio, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (s *ttsService) synthesizeOnce(ctx context.Context, kind, input, voice string) ([]byte, error) {
	synthInput := &texttospeechpb.SynthesisInput{}
	if kind == "ssml" {
		synthInput.InputSource = &texttospeechpb.SynthesisInput_Ssml{Ssml: input}
	} else {
		synthInput.InputSource = &texttospeechpb.SynthesisInput_Text{Text: input}
	}

	resp, err := s.client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: synthInput,
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: defaultLanguageCode,
			Name:         voice,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
			SpeakingRate:  defaultSpeakingRate,
			Pitch:         0.0,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("synthesize speech: %w", err)
	}
	if len(resp.GetAudioContent()) == 0 {
		return nil, errors.New("empty audio")
	}
	return resp.GetAudioContent(), nil
}
