package summary

import (
	"strings"
	"time"

	"milkman/pkg/apperr"
)

const (
	monthLayout = "2006-01"
	dateLayout  = "2006-01-02"
)

// Month is a billing window. First and Last are inclusive YYYY-MM-DD bounds;
// Last is the real final day of the month, so February ends on the 28th or
// 29th.
type Month struct {
	Token string
	First string
	Last  string
}

// ParseMonth accepts a YYYY-MM token.
func ParseMonth(token string) (Month, error) {
	token = strings.TrimSpace(token)
	start, err := time.Parse(monthLayout, token)
	if err != nil {
		return Month{}, apperr.Validation("month must be in YYYY-MM form, got %q", token)
	}
	end := start.AddDate(0, 1, -1)
	return Month{
		Token: token,
		First: start.Format(dateLayout),
		Last:  end.Format(dateLayout),
	}, nil
}
