// Package banner renders the one-line startup greeting.
package banner

import (
	"fmt"
	"io"

	"github.com/eugenenazirov/demo/internal/config"
)

// Format is the banner layout; name and version are substituted in order.
const Format = "🚀 %s v%s - Ready to ship!"

// Render returns the banner for cfg without a line terminator.
func Render(cfg config.Config) string {
	return fmt.Sprintf(Format, cfg.Name(), cfg.Version())
}

// Write emits the banner followed by a newline in a single write.
func Write(w io.Writer, cfg config.Config) error {
	if _, err := w.Write([]byte(Render(cfg) + "\n")); err != nil {
		return fmt.Errorf("write banner: %w", err)
	}
	return nil
}
