package rest

import (
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"
)

// requestLanguage picks the lang query parameter, then Accept-Language, then the default language.
func (h *NewsHandler) requestLanguage(c echo.Context) string {
	if lang := c.QueryParam("lang"); h.manager.IsLanguage(lang) {
		return lang
	}

	if lang := matchAcceptLanguage(c.Request().Header.Get("Accept-Language"), h.manager.Languages()); lang != "" {
		return lang
	}

	return h.manager.DefaultLanguage()
}

// matchAcceptLanguage returns the first supported language by preference, comparing full tags
// before base languages. It returns "" when nothing matches.
func matchAcceptLanguage(header string, supported []string) string {
	if header == "" {
		return ""
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return ""
	}

	for _, tag := range tags {
		for _, s := range supported {
			if strings.EqualFold(tag.String(), s) {
				return s
			}
		}

		base, confidence := tag.Base()
		if confidence == language.No {
			continue
		}
		for _, s := range supported {
			if strings.EqualFold(base.String(), s) {
				return s
			}
		}
	}

	return ""
}
