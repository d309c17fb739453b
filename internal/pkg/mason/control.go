package mason

// Control is a hypermedia control: a link plus the request that follows it.
type Control struct {
	Href     string `json:"href"`
	Method   string `json:"method,omitempty"`
	Encoding string `json:"encoding,omitempty"`
	Title    string `json:"title,omitempty"`
	Schema   any    `json:"schema,omitempty"`
}

type ControlOption func(*Control)

func WithMethod(method string) ControlOption {
	return func(c *Control) { c.Method = method }
}

func WithEncoding(encoding string) ControlOption {
	return func(c *Control) { c.Encoding = encoding }
}

func WithTitle(title string) ControlOption {
	return func(c *Control) { c.Title = title }
}

// WithSchema attaches a JSON Schema describing the request body.
func WithSchema(schema any) ControlOption {
	return func(c *Control) { c.Schema = schema }
}
