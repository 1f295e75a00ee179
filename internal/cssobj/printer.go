package cssobj

import "strings"

// Options controls stylesheet formatting
type Options struct {
	Compact bool   // Single line, no optional whitespace
	Indent  string // Indent unit for pretty output (default: two spaces)
}

func (o Options) indent() string {
	if o.Indent == "" {
		return "  "
	}
	return o.Indent
}

// printer writes nested blocks in pretty or compact form
type printer struct {
	sb    strings.Builder
	opts  Options
	depth int
}

func newPrinter(opts Options) *printer {
	return &printer{opts: opts}
}

func (p *printer) writeIndent() {
	if p.opts.Compact {
		return
	}
	for i := 0; i < p.depth; i++ {
		p.sb.WriteString(p.opts.indent())
	}
}

// pair formats "name: value" (compact: "name:value")
func (p *printer) pair(name, value string) string {
	if p.opts.Compact {
		return name + ":" + value
	}
	return name + ": " + value
}

func (p *printer) open(header string) {
	p.writeIndent()
	p.sb.WriteString(header)
	if p.opts.Compact {
		p.sb.WriteByte('{')
	} else {
		p.sb.WriteString(" {\n")
	}
	p.depth++
}

func (p *printer) close() {
	p.depth--
	p.writeIndent()
	p.sb.WriteByte('}')
	if !p.opts.Compact {
		p.sb.WriteByte('\n')
	}
}

// rule writes selector { declarations }
func (p *printer) rule(selector string, decls []Declaration) {
	p.open(selector)
	for i, d := range decls {
		if p.opts.Compact {
			if i > 0 {
				p.sb.WriteByte(';')
			}
			p.sb.WriteString(p.pair(d.Property, d.Value))
			continue
		}
		p.writeIndent()
		p.sb.WriteString(p.pair(d.Property, d.Value))
		p.sb.WriteString(";\n")
	}
	p.close()
}

func (p *printer) raw(s string) {
	p.sb.WriteString(s)
}

func (p *printer) String() string {
	return p.sb.String()
}
