package window

// WindowBuilderOption is a functional option applied to a window during
// construction via NewWindow.
type WindowBuilderOption func(*platformWindow)

// WithTitle sets the window title shown in the title bar.
//
// Parameters:
//   - title: the window title
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *platformWindow) {
		w.title = title
	}
}

// WithSize sets the requested window client area size in pixels. The actual
// framebuffer size may differ on high-DPI displays; Width/Height report the
// framebuffer size after creation.
//
// Parameters:
//   - width: requested width in pixels (values < 1 keep the default)
//   - height: requested height in pixels (values < 1 keep the default)
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSize(width, height int) WindowBuilderOption {
	return func(w *platformWindow) {
		if width > 0 {
			w.width = width
		}
		if height > 0 {
			w.height = height
		}
	}
}
