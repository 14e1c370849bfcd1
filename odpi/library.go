package odpi

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ebitengine/purego"
)

// clientLibrary returns the Oracle client library name for the current platform
func clientLibrary() string {
	switch runtime.GOOS {
	case "darwin":
		return "libclntsh.dylib"
	case "windows":
		return "oci.dll"
	default: // linux, *bsd, etc
		return "libclntsh.so"
	}
}

// Library represents a loaded Oracle client shared library
type Library struct {
	handle uintptr
}

// Load loads the Oracle client shared library
func Load() (*Library, error) {
	// Try multiple locations for the library
	libNames := []string{
		clientLibrary(), // System default
	}

	// Check environment variable for custom location (e.g. an unzipped
	// instant client)
	if libDir := os.Getenv("ORACLE_LIB_DIR"); libDir != "" {
		libNames = append([]string{
			filepath.Join(libDir, clientLibrary()),
		}, libNames...)
	}

	// Try loading from each location
	var lastErr error
	for _, libName := range libNames {
		handle, err := purego.Dlopen(libName, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			return &Library{handle: handle}, nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf("failed to load Oracle client library from any location: %w", lastErr)
}

// Close closes the loaded library
func (l *Library) Close() error {
	if l.handle != 0 {
		return purego.Dlclose(l.handle)
	}
	return nil
}

// RegisterFunc registers a function from the library. It panics when the
// symbol cannot be found, matching purego's RegisterLibFunc contract; use
// Lookup first when the symbol is optional.
func (l *Library) RegisterFunc(fn interface{}, name string) {
	purego.RegisterLibFunc(fn, l.handle, name)
}

// Lookup reports whether the library exports the named symbol
func (l *Library) Lookup(name string) error {
	_, err := purego.Dlsym(l.handle, name)
	return err
}

// ClientVersion reports the release of the loaded client library
func (l *Library) ClientVersion() (int32, int32, error) {
	if err := l.Lookup("OCIClientVersion"); err != nil {
		return 0, 0, fmt.Errorf("OCIClientVersion not available: %w", err)
	}
	var clientVersion func(major, minor, update, patch, portUpdate *int32)
	l.RegisterFunc(&clientVersion, "OCIClientVersion")
	var maj, min, update, patch, portUpdate int32
	clientVersion(&maj, &min, &update, &patch, &portUpdate)
	return maj, min, nil
}
