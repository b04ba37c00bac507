package slug

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// The course name becomes a directory and a URL base path segment, so
// it has to survive every filesystem the course might be cloned onto.
const maxCourseNameLen = 100

var invalidPathChars = `<>:"/\|?*`

var courseNameRe = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9._-]*[a-zA-Z0-9])?$`)

// Windows reserves these as device names regardless of extension.
var reservedNames = map[string]bool{
	"con": true, "prn": true, "aux": true, "nul": true,
	"com1": true, "com2": true, "com3": true, "com4": true, "com5": true,
	"com6": true, "com7": true, "com8": true, "com9": true,
	"lpt1": true, "lpt2": true, "lpt3": true, "lpt4": true, "lpt5": true,
	"lpt6": true, "lpt7": true, "lpt8": true, "lpt9": true,
}

// ValidateCourseName rejects names that cannot serve as both a
// directory name and a URL path segment. The first failed check wins.
func ValidateCourseName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("course name: must not be empty")
	}
	if utf8.RuneCountInString(name) > maxCourseNameLen {
		return fmt.Errorf("course name: must be %d characters or fewer", maxCourseNameLen)
	}
	for _, r := range name {
		if unicode.Is(unicode.Cyrillic, r) {
			return fmt.Errorf("course name: must not contain Cyrillic letters (use Latin characters)")
		}
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("course name: must not contain spaces")
	}
	if strings.ContainsAny(name, invalidPathChars) {
		return fmt.Errorf(`course name: must not contain any of < > : " / \ | ? *`)
	}
	base := name
	if i := strings.Index(name, "."); i >= 0 {
		base = name[:i]
	}
	if reservedNames[strings.ToLower(base)] {
		return fmt.Errorf("course name: %q is a reserved device name on Windows", name)
	}
	if !courseNameRe.MatchString(name) {
		return fmt.Errorf("course name: must start and end with a letter or digit and contain only letters, digits, '.', '_', and '-'")
	}
	return nil
}
