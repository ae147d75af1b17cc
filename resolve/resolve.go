package resolve

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/sgnl-ai/caep-transmitter-agent/params"
)

// Resolver prepares the parameter mapping before validation. Both
// implementations return a fresh mapping; resolution failures are
// warnings, never fatal.
type Resolver interface {
	Resolve(p params.Params, doc []byte) (params.Params, []error)
}

// Identity is used when the host framework has already resolved all
// parameter templates.
type Identity struct{}

func NewIdentity() *Identity {
	return &Identity{}
}

func (r *Identity) Resolve(p params.Params, _ []byte) (params.Params, []error) {
	return p.Clone(), nil
}

// Template resolves parameter values of the form ${path} against the
// context document supplied with the invocation. A value that is not a
// template, or whose path does not exist in the document, is kept as is.
type Template struct{}

func NewTemplate() *Template {
	return &Template{}
}

func (r *Template) Resolve(p params.Params, doc []byte) (params.Params, []error) {
	resolved := make(params.Params, len(p))

	var warnings []error

	for key, value := range p {
		resolved[key] = value

		if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
			continue
		}

		path := strings.TrimSuffix(strings.TrimPrefix(value, "${"), "}")

		if len(doc) == 0 {
			warnings = append(warnings, fmt.Errorf("no context document to resolve %q for parameter %q", path, key))

			continue
		}

		result := gjson.GetBytes(doc, path)
		if !result.Exists() {
			warnings = append(warnings, fmt.Errorf("unresolved path %q for parameter %q", path, key))

			continue
		}

		resolved[key] = result.String()
	}

	return resolved, warnings
}
