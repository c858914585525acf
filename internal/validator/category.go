package validator

import "strings"

// Category is the closed set of metric kinds a literal answer may report.
type Category string

const (
	CategoryCPULoad      Category = "CPU_LOAD"
	CategoryMemoryUsage  Category = "MEMORY_USAGE"
	CategoryDiskUsage    Category = "DISK_USAGE"
	CategoryResponseTime Category = "RESPONSE_TIME"
	CategoryStatusCode   Category = "STATUS_CODE"
)

// categoryKeywords maps each category to the keywords that identify it.
// Multi-word keywords are matched before their single-word components
// ("status code" before "code", "response time" before "response").
// The bare word "load" deliberately maps to CPU_LOAD.
var categoryKeywords = []struct {
	cat      Category
	keywords []string
}{
	{CategoryCPULoad, []string{"cpu", "processor", "load"}},
	{CategoryMemoryUsage, []string{"memory", "ram", "swap"}},
	{CategoryDiskUsage, []string{"disk", "storage", "filesystem"}},
	{CategoryResponseTime, []string{"response time", "latency", "response"}},
	{CategoryStatusCode, []string{"status code", "status", "http code"}},
}

// DetectCategory maps text to a category via keyword sniffing.
// Returns ("", false) when no keyword matches.
func DetectCategory(text string) (Category, bool) {
	lower := strings.ToLower(text)
	for _, ck := range categoryKeywords {
		for _, kw := range ck.keywords {
			if containsWord(lower, kw) {
				return ck.cat, true
			}
		}
	}
	return "", false
}

// CategoriesIn returns every distinct category whose keywords appear
// anywhere in text, in declaration order.
func CategoriesIn(text string) []Category {
	lower := strings.ToLower(text)
	var out []Category
	for _, ck := range categoryKeywords {
		for _, kw := range ck.keywords {
			if containsWord(lower, kw) {
				out = append(out, ck.cat)
				break
			}
		}
	}
	return out
}

// containsWord reports whether kw occurs in text on word boundaries.
// kw may contain spaces; text must already be lowercased.
func containsWord(text, kw string) bool {
	for i := 0; i+len(kw) <= len(text); i++ {
		if text[i:i+len(kw)] != kw {
			continue
		}
		if i > 0 && isWordByte(text[i-1]) {
			continue
		}
		if end := i + len(kw); end < len(text) && isWordByte(text[end]) {
			continue
		}
		return true
	}
	return false
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
}
