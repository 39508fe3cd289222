package feedback

import "strings"

// Compound two-character Korean surnames. Checked before the default
// single-character surname rule.
var compoundSurnames = []string{
	"남궁", "황보", "제갈", "사공", "선우", "서문", "독고", "동방", "어금", "망절",
}

// Honorific suffixes stripped from a submitted name.
var honorificSuffixes = []string{"님", "양", "군"}

// CallName derives the short form of a child's full name used in
// parent-facing text: surname stripped, one-syllable given names get a
// euphonic 이 suffix.
func CallName(fullName string) string {
	name := []rune(strings.TrimSpace(fullName))
	if len(name) == 0 {
		return ""
	}
	for _, h := range honorificSuffixes {
		if len(name) > 2 && strings.HasSuffix(string(name), h) {
			name = name[:len(name)-len([]rune(h))]
			break
		}
	}

	given := name
	switch {
	case len(name) >= 3 && hasCompoundSurname(string(name)):
		given = name[2:]
	case len(name) >= 2:
		given = name[1:]
	}
	if len(given) == 1 {
		return string(given) + "이"
	}
	return string(given)
}

func hasCompoundSurname(name string) bool {
	for _, s := range compoundSurnames {
		if strings.HasPrefix(name, s) {
			return true
		}
	}
	return false
}

// RewriteCallName rewrites occurrences of the child's full name (with or
// without an honorific suffix) to the call name, so generated text reads
// naturally regardless of how the model referenced the child.
func RewriteCallName(text, fullName string) string {
	fullName = strings.TrimSpace(fullName)
	if text == "" || fullName == "" {
		return text
	}
	call := CallName(fullName)
	if call == "" || call == fullName {
		return text
	}
	for _, h := range honorificSuffixes {
		text = strings.ReplaceAll(text, fullName+h, call)
	}
	return strings.ReplaceAll(text, fullName, call)
}
