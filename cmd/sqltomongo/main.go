package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/querybridge/sqltomongo"
)

func main() {
	var filename string
	var inputFormat string
	var defaultCollection string
	var noSemicolon bool

	useColors := isatty.IsTerminal(os.Stdout.Fd())

	flag.BoolFunc("colors", "force using colors", func(s string) error {
		useColors = true
		return nil
	})
	flag.BoolFunc("nocolors", "disable colors", func(s string) error {
		useColors = false
		return nil
	})

	flag.StringVar(&filename, "file", "", "input filename (stdin if omitted)")
	flag.StringVar(&inputFormat, "in", "auto", "input format: sql, mongo or auto")
	flag.StringVar(&defaultCollection, "collection", "", "collection to use when a query object has none")
	flag.BoolVar(&noSemicolon, "nosemicolon", false, "omit the trailing semicolon from generated SQL")
	flag.Parse()

	// Input comes from the arguments, a file, or stdin, in that order.
	var text string
	if flag.NArg() > 0 {
		text = strings.Join(flag.Args(), " ")
	} else {
		input := io.Reader(os.Stdin)
		if filename != "" {
			f, err := os.Open(filename)
			if err != nil {
				fatalError("error opening %q: %s", filename, err)
			}
			defer f.Close()
			input = f
		}
		data, err := io.ReadAll(input)
		if err != nil {
			fatalError("unable to read input: %s", err)
		}
		text = string(data)
	}
	text = strings.TrimSpace(text)

	if inputFormat == "auto" {
		if strings.HasPrefix(text, "{") {
			inputFormat = "mongo"
		} else {
			inputFormat = "sql"
		}
	}

	var options []sqltomongo.Option
	if defaultCollection != "" {
		options = append(options, sqltomongo.WithDefaultCollection(defaultCollection))
	}
	if noSemicolon {
		options = append(options, sqltomongo.WithoutSemicolon())
	}
	translator := sqltomongo.NewTranslator(options...)

	var stdout io.Writer = os.Stdout
	if useColors {
		stdout = colorable.NewColorableStdout()
	}

	switch inputFormat {
	case "sql":
		m, err := translator.SQLToMongo(text)
		if err != nil {
			fatalError("error: %s", err)
		}
		out, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			fatalError("error: %s", err)
		}
		fmt.Fprintln(stdout, string(out))
	case "mongo":
		var m sqltomongo.MongoQuery
		if err := json.Unmarshal([]byte(text), &m); err != nil {
			fatalError("invalid query object: %s", err)
		}
		sql, err := translator.MongoToSQL(&m)
		if err != nil {
			fatalError("error: %s", err)
		}
		if useColors {
			sql = colorizeSQL(sql)
		}
		fmt.Fprintln(stdout, sql)
	default:
		fatalError("invalid input format: %q", inputFormat)
	}
}

func fatalError(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
	os.Exit(1)
}

// Some color ANSI codes
var (
	reset      = "\033[0m"
	brightBlue = "\033[34;1m"
)

var sqlKeywords = map[string]bool{
	"SELECT": true, "FROM": true, "WHERE": true,
	"AND": true, "OR": true, "ORDER": true, "BY": true,
	"ASC": true, "DESC": true, "LIMIT": true, "OFFSET": true,
	"IN": true, "NOT": true, "LIKE": true,
}

func colorizeSQL(sql string) string {
	words := strings.Split(sql, " ")
	for i, word := range words {
		if sqlKeywords[word] {
			words[i] = brightBlue + word + reset
		}
	}
	return strings.Join(words, " ")
}
