package markdown

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter is returned when a document opens frontmatter but never closes it.
var ErrMissingClosingDelimiter = errors.New("frontmatter: missing closing delimiter")

// SplitFrontmatter separates `---` delimited YAML frontmatter from the body.
// Documents without frontmatter return an empty map and the full input.
func SplitFrontmatter(content []byte) (map[string]any, []byte, error) {
	nl := "\n"
	if bytes.Contains(content, []byte("\r\n")) {
		nl = "\r\n"
	}
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return map[string]any{}, content, nil
	}

	rest := content[len(open):]
	var raw, body []byte
	if bytes.HasPrefix(rest, open) {
		body = rest[len(open):]
	} else {
		closeSeq := []byte(nl + "---" + nl)
		idx := bytes.Index(rest, closeSeq)
		if idx < 0 {
			// A closing delimiter at EOF without a trailing newline.
			if bytes.HasSuffix(rest, []byte(nl+"---")) {
				idx = len(rest) - len(nl) - 3
				raw, body = rest[:idx], nil
				return parseYAML(raw, body)
			}
			return nil, nil, ErrMissingClosingDelimiter
		}
		raw = rest[:idx+len(nl)]
		body = rest[idx+len(closeSeq):]
	}
	return parseYAML(raw, body)
}

func parseYAML(raw, body []byte) (map[string]any, []byte, error) {
	fm := map[string]any{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return fm, body, nil
	}
	if err := yaml.Unmarshal(raw, &fm); err != nil {
		return nil, nil, err
	}
	if fm == nil {
		fm = map[string]any{}
	}
	return fm, body, nil
}
