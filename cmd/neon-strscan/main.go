package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goccy/go-json"
	"github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp"
	"github.com/mattn/go-isatty"
	"github.com/neonlang/strscan/internal/tokenizer"
	"golang.org/x/sync/errgroup"
)

type Option struct {
	Source []string `short:"s" long:"source" description:"[OPTIONAL] String literal to tokenize (repeatable)" required:"false"`
	Corpus []string `short:"c" long:"corpus" description:"[OPTIONAL] Corpus YAML file to run (repeatable)" required:"false"`
	Debug  bool     `short:"d" long:"debug" description:"[OPTIONAL] Dump the token stream structure for debugging" required:"false"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	_, err := parser.ParseArgs(args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return 0
		} else {
			parser.WriteHelp(os.Stdout)
			return 1
		}
	}
	if len(opt.Source) == 0 && len(opt.Corpus) == 0 {
		parser.WriteHelp(os.Stdout)
		return 1
	}

	if len(opt.Corpus) != 0 {
		if failed := runCorpusFiles(opt.Corpus); failed {
			return 1
		}
	}

	for _, source := range opt.Source {
		res, err := tokenizer.TokenizeLiteral(source)
		if err != nil {
			log.Printf("failed to tokenize %q: %v", source, err)
			return 1
		}
		if opt.Debug {
			pp.Println(res)
		}
		if err = dumpJSON(os.Stdout, res); err != nil {
			log.Printf("failed to dump token stream: %v", err)
			return 1
		}
	}

	return 0
}

func runCorpusFiles(paths []string) (failed bool) {
	failuresPerFile := make([][]tokenizer.CorpusFailure, len(paths))

	eg := errgroup.Group{}
	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			corpus, err := tokenizer.LoadCorpus(path)
			if err != nil {
				return err
			}
			failuresPerFile[i] = corpus.Run()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Printf("failed to run corpus: %v", err)
		return true
	}

	for _, failures := range failuresPerFile {
		for _, failure := range failures {
			log.Printf("corpus failure: %s", failure)
			failed = true
		}
	}
	return failed
}

func dumpJSON(w io.Writer, v any) error {
	opts := []json.EncodeOptionFunc{json.DisableHTMLEscape()}
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		if isatty.IsTerminal(f.Fd()) {
			opts = append(opts, json.Colorize(json.DefaultColorScheme))
		}
	}

	b, err := json.MarshalIndentWithOption(v, "", "\t", opts...)
	if err != nil {
		return fmt.Errorf("json.MarshalIndentWithOption: %w", err)
	}

	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("w.Write: %w", err)
	}
	if _, err = io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("io.WriteString: %w", err)
	}
	return nil
}
