package logger

// Logger is the capability set shared by every variant. Callers should
// depend on it rather than on a concrete type.
type Logger interface {
	Error(msg string, meta ...any)
	Warn(msg string, meta ...any)
	Info(msg string, meta ...any)
	Debug(msg string, meta ...any)

	BrowserAuth(msg string)
	Refresh(msg string)
	Success(msg string)
	BrowserURL(url string)
	BrowserOpening()
	TestSkip(msg string)
}

var (
	_ Logger = (*StandardLogger)(nil)
	_ Logger = (*StructuredLogger)(nil)
)

type leveled interface {
	Info(msg string, meta ...any)
	Debug(msg string, meta ...any)
}

// conveniences implements the decorated wrappers on top of Info and Debug.
// They carry no threshold of their own.
type conveniences struct {
	base leveled
}

func (c conveniences) BrowserAuth(msg string) {
	c.base.Info("🌐 " + msg)
}

func (c conveniences) Refresh(msg string) {
	c.base.Info("🔄 " + msg)
}

func (c conveniences) Success(msg string) {
	c.base.Info("✅ " + msg)
}

func (c conveniences) BrowserURL(url string) {
	c.base.Info("🔗 Open in browser: " + url)
}

// BrowserOpening only shows at debug; the browser opens on its own.
func (c conveniences) BrowserOpening() {
	c.base.Debug("🌐 Opening browser for authentication...")
}

func (c conveniences) TestSkip(msg string) {
	c.base.Info("⏭️  " + msg)
}

// metaValue collapses the optional metadata argument: nothing, the single
// value, or the whole slice.
func metaValue(meta []any) any {
	switch len(meta) {
	case 0:
		return nil
	case 1:
		return meta[0]
	default:
		return meta
	}
}

func decorate(level Level, msg string) string {
	return level.Icon() + " " + msg
}
