package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alecthomas/repr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/svparse/svparse"
)

type parseCmd struct {
	Defines       []string `short:"D" placeholder:"NAME[=VALUE]" help:"Macro the files were preprocessed with. NAME(ARGS)=VALUE defines a function-like macro."`
	IncludePaths  []string `short:"I" name:"include-path" env:"SVPARSE_INCLUDE_PATH" placeholder:"DIR" help:"Directory used to resolve includes."`
	IgnoreInclude bool     `help:"Skip include directives instead of failing on them."`
	Incomplete    bool     `help:"Accept module items, class items and statements at the top level."`
	MaxDepth      int      `default:"${max_depth}" help:"Maximum rule nesting depth, 0 for unlimited."`
	Dump          string   `enum:"none,outline,repr,yaml" default:"none" help:"Print each syntax tree as one of ${enum}."`
	Trace         bool     `help:"Trace rule attempts to stderr. Forces --jobs=1."`
	Jobs          int      `short:"j" default:"4" help:"Number of files to parse concurrently."`
	Files         []string `arg:"" name:"file" help:"Files to parse."`
}

func (c *parseCmd) Help() string {
	return `
Each file is parsed independently. Errors are printed with the offending source line, and the
command fails if any file did not parse.
`
}

type parseResult struct {
	file string
	text string
	tree *svparse.SyntaxTree
	err  error
}

func (c *parseCmd) Run(env *environment) error {
	defines, err := parseDefines(c.Defines)
	if err != nil {
		return err
	}
	options := []svparse.Option{
		svparse.WithDefines(defines),
		svparse.IncludePaths(c.IncludePaths...),
		svparse.MaxDepth(c.MaxDepth),
	}
	if c.IgnoreInclude {
		options = append(options, svparse.IgnoreInclude())
	}
	if c.Incomplete {
		options = append(options, svparse.AllowIncomplete())
	}
	jobs := c.Jobs
	if c.Trace {
		options = append(options, svparse.Trace(env.stderr))
		jobs = 1
	}
	parser, err := svparse.New(options...)
	if err != nil {
		return err
	}

	results := make([]parseResult, len(c.Files))
	wg, ctx := errgroup.WithContext(context.Background())
	if jobs > 0 {
		wg.SetLimit(jobs)
	}
	for i, file := range c.Files {
		i, file := i, file
		wg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := afero.ReadFile(env.fs, file)
			if err != nil {
				return err
			}
			start := time.Now()
			tree, err := parser.ParseBytes(file, data)
			log := env.log.WithFields(logrus.Fields{
				"file":     file,
				"duration": time.Since(start),
			})
			if err != nil {
				log.WithError(err).Debug("Parse failed")
			} else {
				log.Debug("Parsed")
			}
			results[i] = parseResult{file: file, text: string(data), tree: tree, err: err}
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return err
	}

	failed := 0
	for _, result := range results {
		if result.err != nil {
			failed++
			if err := printDiagnostic(env.stderr, result.text, result.err); err != nil {
				return err
			}
			continue
		}
		if err := c.dump(env.stdout, result); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failed, len(results))
	}
	return nil
}

func (c *parseCmd) dump(w io.Writer, result parseResult) error {
	var err error
	switch c.Dump {
	case "outline":
		_, err = fmt.Fprintf(w, "# %s\n", result.file)
		if err == nil {
			err = result.tree.Outline(w, result.tree.Root)
		}
	case "repr":
		_, err = fmt.Fprintf(w, "# %s\n%s\n", result.file, repr.String(result.tree.Root, repr.Indent("  "), repr.OmitEmpty(true)))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(map[string]interface{}{
			"file": result.file,
			"tree": newDumpNode(result.tree, result.tree.Root),
		})
		if err == nil {
			err = enc.Close()
		}
	}
	return err
}

// parseDefines converts -D flags to definitions.
//
//	NAME         defined without a value
//	NAME=TEXT    object-like macro
//	NAME(A,B)=TEXT function-like macro
func parseDefines(flags []string) (svparse.Defines, error) {
	defines := svparse.Defines{}
	for _, flag := range flags {
		head, text, hasText := strings.Cut(flag, "=")
		define := &svparse.Define{Name: strings.TrimSpace(head), Text: text}
		if open := strings.IndexByte(head, '('); open >= 0 {
			if !strings.HasSuffix(head, ")") {
				return nil, fmt.Errorf("invalid define %q: unterminated argument list", flag)
			}
			define.Name = strings.TrimSpace(head[:open])
			for _, arg := range strings.Split(head[open+1:len(head)-1], ",") {
				if arg = strings.TrimSpace(arg); arg != "" {
					define.Arguments = append(define.Arguments, arg)
				}
			}
		}
		if define.Name == "" {
			return nil, errors.New("invalid define: missing name")
		}
		if !hasText && define.Arguments == nil {
			defines[define.Name] = nil
			continue
		}
		defines[define.Name] = define
	}
	return defines, nil
}
