package uitree

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-uitree/internal/theme"
)

// ScreenOption is a functional option for configuring a Screen.
type ScreenOption func(*Screen) error

// WithSize sets the screen size in pixels. Default is 1280x720.
func WithSize(width, height float64) ScreenOption {
	return func(s *Screen) error {
		if width <= 0 || height <= 0 {
			return fmt.Errorf("screen size must be positive, got %vx%v", width, height)
		}
		s.width = width
		s.height = height
		return nil
	}
}

// WithLogger sets the logger used for tree mutations. Default discards output.
func WithLogger(l *log.Logger) ScreenOption {
	return func(s *Screen) error {
		if l == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		s.logger = l
		return nil
	}
}

// WithRenderer sets the rendering backend.
func WithRenderer(r Renderer) ScreenOption {
	return func(s *Screen) error {
		if r == nil {
			return fmt.Errorf("renderer cannot be nil")
		}
		s.renderer = r
		return nil
	}
}

// WithSceneGraph sets the scene graph adapter.
func WithSceneGraph(g SceneGraph) ScreenOption {
	return func(s *Screen) error {
		if g == nil {
			return fmt.Errorf("scene graph cannot be nil")
		}
		s.scene = g
		return nil
	}
}

// WithTheme sets the theme used by the style-key setters.
func WithTheme(t *theme.Theme) ScreenOption {
	return func(s *Screen) error {
		s.theme = t
		return nil
	}
}

// WithZOrderStep sets the depth step between screen-level elements.
// Default is 10. Must be positive.
func WithZOrderStep(step float64) ScreenOption {
	return func(s *Screen) error {
		if step <= 0 {
			return fmt.Errorf("z-order step must be positive")
		}
		s.zOrderStep = step
		return nil
	}
}
