package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/boundedlogic/clpbnr/engine"
	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/numeric"
)

// script is a parsed constraint script: a flat sequence of declare/post
// lines, per this command's doc comment. Blank lines and lines starting
// with '#' are ignored.
type script struct {
	declares []declareLine
	posts    []string
}

type declareLine struct {
	name string
	kind ivl.Kind
	bool bool
	lo   numeric.Extended
	hi   numeric.Extended
	// hasBounds is false when no explicit bounds were given, in which
	// case engine.Declare's default-bounds behavior applies.
	hasBounds bool
}

// parseScript reads r line by line, classifying each non-blank,
// non-comment line as "declare ..." or "post ...".
func parseScript(r io.Reader) (*script, error) {
	sc := &script{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch strings.ToLower(fields[0]) {
		case "declare":
			d, err := parseDeclareLine(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			sc.declares = append(sc.declares, d)
		case "post":
			rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))
			if rest == "" {
				return nil, fmt.Errorf("line %d: post with no expression", lineNo)
			}
			sc.posts = append(sc.posts, rest)
		default:
			return nil, fmt.Errorf("line %d: unrecognized statement %q", lineNo, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sc, nil
}

// parseDeclareLine parses "declare NAME real|integer|boolean[(LO,HI)]".
func parseDeclareLine(line string) (declareLine, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return declareLine{}, fmt.Errorf("malformed declare statement %q", line)
	}
	name := fields[1]
	rest := strings.Join(fields[2:], "")
	kindText := rest
	boundsText := ""
	if idx := strings.IndexByte(rest, '('); idx >= 0 {
		if !strings.HasSuffix(rest, ")") {
			return declareLine{}, fmt.Errorf("malformed bounds in %q", line)
		}
		kindText = rest[:idx]
		boundsText = rest[idx+1 : len(rest)-1]
	}

	d := declareLine{name: name}
	switch strings.ToLower(kindText) {
	case "real":
		d.kind = ivl.Real
	case "integer":
		d.kind = ivl.Integer
	case "boolean":
		d.kind = ivl.Integer
		d.bool = true
	default:
		return declareLine{}, fmt.Errorf("unknown domain %q", kindText)
	}

	if boundsText != "" {
		parts := strings.Split(boundsText, ",")
		if len(parts) != 2 {
			return declareLine{}, fmt.Errorf("bounds must be LO,HI in %q", line)
		}
		lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return declareLine{}, fmt.Errorf("bad lower bound: %w", err)
		}
		hi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return declareLine{}, fmt.Errorf("bad upper bound: %w", err)
		}
		d.lo = numeric.FromFloat64(lo)
		d.hi = numeric.FromFloat64(hi)
		d.hasBounds = true
	}
	return d, nil
}

// run declares every variable, compiles and posts every constraint
// against e, and returns the name -> interval map the declare/solve
// subcommands use to report results.
func (sc *script) run(e *engine.Engine) (map[string]*ivl.Interval, error) {
	vars := make(map[string]*ivl.Interval, len(sc.declares))
	exprVars := make(map[string]engine.Expr, len(sc.declares))

	for _, d := range sc.declares {
		var iv *ivl.Interval
		var err error
		switch {
		case d.bool:
			iv, err = e.DeclareBoolean()
		case d.hasBounds:
			iv, err = e.Declare(d.kind, ivl.Bounds{Lo: d.lo, Hi: d.hi})
		default:
			iv, err = e.Declare(d.kind, ivl.Bounds{})
		}
		if err != nil {
			return nil, fmt.Errorf("declare %s: %w", d.name, err)
		}
		vars[d.name] = iv
		exprVars[d.name] = e.VarRef(iv)
	}

	for _, text := range sc.posts {
		expr, err := parseExprString(text, exprVars)
		if err != nil {
			return nil, fmt.Errorf("post %q: %w", text, err)
		}
		if err := e.Post(context.Background(), expr); err != nil {
			return nil, fmt.Errorf("post %q: %w", text, err)
		}
	}

	return vars, nil
}
