// file: internals/helpers/slug.go
package helper

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 100

// GenerateSlug menormalkan string menjadi slug:
// - lower-case
// - spasi & non-alnum jadi "-"
// - collapse multiple "-" -> satu "-"
// - trim "-" di kedua ujung
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else {
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")

	reDash := regexp.MustCompile(`-+`)
	out = reDash.ReplaceAllString(out, "-")

	if len(out) > DefaultSlugMaxLen {
		out = strings.Trim(out[:DefaultSlugMaxLen], "-")
	}
	return out
}

// EnsureUniqueSlug memastikan slug unik (case-insensitive) di tabel tertentu,
// hanya menghitung baris yang belum soft-delete. Jika bentrok, coba base-2,
// base-3, dst.
func EnsureUniqueSlug(db *gorm.DB, base, table, column string) (string, error) {
	if base == "" {
		base = "x"
	}
	candidate := base
	for i := 2; ; i++ {
		var cnt int64
		q := db.Table(table).
			Where(fmt.Sprintf("lower(%s) = lower(?)", column), candidate)
		if err := q.Count(&cnt).Error; err != nil {
			return "", err
		}
		if cnt == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
		if i > 10000 {
			return "", fmt.Errorf("slug %q tidak bisa dibuat unik", base)
		}
	}
}
