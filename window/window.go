// Package window provides the platform window the renderer draws into,
// wrapping GLFW behind a small interface that exposes a WebGPU surface
// descriptor and the event loop that drives the application's frames.
package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides platform windowing and input event handling for the
// renderer and the application run loop.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	// The application run loop uses this to execute one frame per iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is
	// resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyCallback sets the callback for key press and release events.
	//
	// Parameters:
	//   - callback: function receiving the key code and whether it was pressed
	SetKeyCallback(callback func(keyCode uint32, pressed bool))

	// SetScrollCallback sets the callback for mouse scroll wheel events.
	//
	// Parameters:
	//   - callback: function receiving the scroll delta (positive = up)
	SetScrollCallback(callback func(delta float32))

	// SurfaceDescriptor returns a platform-appropriate wgpu.SurfaceDescriptor
	// for creating a WebGPU surface, or nil if the window is not initialized.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true while the window is open.
	//
	// Returns:
	//   - bool: true if the window is still active
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if the window was never initialized
	Close() error

	// ProcessMessages runs the window message loop, calling the update
	// callback each iteration. Blocks until the window closes.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// platformWindow is the implementation of the Window interface.
type platformWindow struct {
	title  string
	width  int
	height int

	// internal holds the platform-specific window state (glfwWindow).
	internal any

	onUpdate func()
	onResize func(width, height int)
	onKey    func(keyCode uint32, pressed bool)
	onScroll func(delta float32)
}

var _ Window = &platformWindow{}

// NewWindow creates a new Window with the specified options. Panics if the
// platform window cannot be created, since nothing downstream (surface,
// renderer) can exist without it.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &platformWindow{
		title:  "strata",
		width:  1280,
		height: 720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *platformWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *platformWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *platformWindow) SetKeyCallback(callback func(keyCode uint32, pressed bool)) {
	w.onKey = callback
}

func (w *platformWindow) SetScrollCallback(callback func(delta float32)) {
	w.onScroll = callback
}

func (w *platformWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformSurfaceDescriptor(w)
}

func (w *platformWindow) IsRunning() bool {
	return platformIsRunning(w)
}

func (w *platformWindow) Close() error {
	return platformClose(w)
}

func (w *platformWindow) ProcessMessages() {
	for w.IsRunning() {
		if ok := platformPollEvents(w); !ok {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *platformWindow) Width() int {
	return w.width
}

func (w *platformWindow) Height() int {
	return w.height
}
