package ntfy

// Header is a single outgoing header. Headers are kept as an ordered slice
// so they reach the wire in the order the options were rendered.
type Header struct {
	Name  string
	Value string
}

// PublishOptions holds the optional publish attributes understood by ntfy
// servers. Zero-valued options produce no header.
type PublishOptions struct {
	Title       string
	Priority    string
	Tags        string
	Delay       string
	Actions     string
	Click       string
	Attach      string
	Markdown    bool
	Icon        string
	Filename    string
	Email       string
	Call        string
	Cache       string
	Firebase    string
	UnifiedPush string
	PollID      string
	Token       string
	ContentType string
}

// Headers renders the options into the header set passed verbatim to the
// outgoing request. Header names follow the ntfy publish protocol.
func (o PublishOptions) Headers() []Header {
	var hs []Header
	add := func(name, value string) {
		if value != "" {
			hs = append(hs, Header{Name: name, Value: value})
		}
	}
	add("X-Title", o.Title)
	add("X-Priority", o.Priority)
	add("X-Tags", o.Tags)
	add("X-Delay", o.Delay)
	add("X-Actions", o.Actions)
	add("X-Click", o.Click)
	add("X-Attach", o.Attach)
	if o.Markdown {
		add("X-Markdown", "yes")
	}
	add("X-Icon", o.Icon)
	add("X-Filename", o.Filename)
	add("X-Email", o.Email)
	add("X-Call", o.Call)
	add("X-Cache", o.Cache)
	add("X-Firebase", o.Firebase)
	add("X-UnifiedPush", o.UnifiedPush)
	add("X-Poll-ID", o.PollID)
	if o.Token != "" {
		add("Authorization", "Bearer "+o.Token)
	}
	add("Content-Type", o.ContentType)
	return hs
}
