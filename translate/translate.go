// This file is part of m6502.
//
// m6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// m6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with m6502.  If not, see <https://www.gnu.org/licenses/>.

// Package translate formats messages for the user's locale. The locale is
// taken from the environment when the first message is formatted. Numbers in
// the message are formatted with the grouping and decimal conventions of the
// locale.
package translate

import (
	"sync"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jetsetilly/m6502/logger"
)

var translator struct {
	once    sync.Once
	crit    sync.Mutex
	printer *message.Printer
}

func initialise() {
	translator.once.Do(func() {
		locales, err := locale.GetLocales()
		if err != nil {
			logger.Logf(logger.Allow, "translate", "locale: %v", err)
		}

		if len(locales) == 0 {
			locales = []string{"en-US"}
		}

		translator.crit.Lock()
		defer translator.crit.Unlock()
		if translator.printer == nil {
			translator.printer = message.NewPrinter(message.MatchLanguage(locales...))
		}
	})
}

// SetLanguage overrides the locale taken from the environment. The tag is a
// BCP 47 language tag, for example "en-GB".
func SetLanguage(tag string) error {
	t, err := language.Parse(tag)
	if err != nil {
		return err
	}

	translator.crit.Lock()
	defer translator.crit.Unlock()
	translator.printer = message.NewPrinter(t)

	return nil
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	initialise()
	translator.crit.Lock()
	defer translator.crit.Unlock()
	return translator.printer.Sprintf(key, args...)
}
