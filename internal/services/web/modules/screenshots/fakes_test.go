package screenshots

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/louisbranch/translating.space/internal/services/translate/screenshot"
)

var pngName = strings.Repeat("ab", 32) + ".png"

type fakeGateway struct {
	objects map[string][]byte
	err     error
	opened  []string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{objects: map[string][]byte{pngName: []byte("\x89PNG fake")}}
}

func (f *fakeGateway) Open(_ context.Context, name string) (io.ReadSeekCloser, error) {
	f.opened = append(f.opened, name)
	if f.err != nil {
		return nil, f.err
	}
	data, ok := f.objects[name]
	if !ok {
		return nil, screenshot.ErrNotFound
	}
	return nopCloser{bytes.NewReader(data)}, nil
}

type nopCloser struct {
	*bytes.Reader
}

func (nopCloser) Close() error { return nil }
