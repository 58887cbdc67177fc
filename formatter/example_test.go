package formatter_test

import (
	"bytes"
	"fmt"

	"github.com/Philipp01105/clog/core"
	"github.com/Philipp01105/clog/formatter"
)

func ExampleTextFormatter_FormatMessage() {
	f := formatter.NewTextFormatter(formatter.Config{})

	msg := &core.Message{
		Location: core.Location{File: core.Str("main.go"), Line: 42, Function: core.Str("main.run")},
		Text:     []byte("connected"),
		Level:    core.Info,
		Tag:      core.Str("NET"),
	}

	buf := make([]byte, 64)
	n := f.FormatMessage(buf, msg)
	fmt.Printf("%d %q\n", n, buf[:bytes.IndexByte(buf, 0)])

	// Output:
	// 39 "INF:NET main.go:42(main.run) connected\n"
}

func ExampleTextFormatter_FormatMessage_truncated() {
	f := formatter.NewTextFormatter(formatter.Config{})

	msg := &core.Message{
		Location: core.Location{File: core.Str("main.go"), Line: 42, Function: core.Str("main.run")},
		Text:     []byte("a rather long message"),
		Level:    core.Error,
		Tag:      core.Str("NET"),
	}

	buf := make([]byte, 36)
	n := f.FormatMessage(buf, msg)
	fmt.Printf("%d %q\n", n, buf[:bytes.IndexByte(buf, 0)])

	// Output:
	// 36 "ERR:NET main.go:42(main.run) a rat\n"
}

func ExampleSnprintf() {
	buf := make([]byte, 6)
	n := formatter.Snprintf(buf, "%s-%d", "value", 12345)
	fmt.Println(n, string(buf[:bytes.IndexByte(buf, 0)]))

	// Output:
	// 11 value
}
