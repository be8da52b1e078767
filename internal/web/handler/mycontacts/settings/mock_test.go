package settings

import (
	"fmt"
	"io"
	"sync"
)

type renderCall struct {
	name    string
	binding interface{}
	layout  []string
}

// mockTemplateEngine records the rendered templates and writes their name.
type mockTemplateEngine struct {
	mu    sync.Mutex
	calls []renderCall
}

func (m *mockTemplateEngine) Load() error {
	return nil
}

func (m *mockTemplateEngine) Render(w io.Writer, name string, binding interface{}, layout ...string) error {
	m.mu.Lock()
	m.calls = append(m.calls, renderCall{name: name, binding: binding, layout: layout})
	m.mu.Unlock()

	_, err := fmt.Fprintf(w, "<%s>", name)

	return err
}

// last returns the most recent call rendering name.
func (m *mockTemplateEngine) last(name string) (renderCall, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := len(m.calls) - 1; i >= 0; i-- {
		if m.calls[i].name == name {
			return m.calls[i], true
		}
	}

	return renderCall{}, false
}
