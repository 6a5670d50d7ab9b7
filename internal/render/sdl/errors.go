package sdl

import "errors"

// ErrUnavailable is returned when the binary was built without the sdl tag.
var ErrUnavailable = errors.New("sdl: backend not built in, rebuild with -tags sdl")
