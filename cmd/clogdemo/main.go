// Command clogdemo walks through the clog API: it logs a scripted series of
// messages under two tags while switching the sink's filter at run time.
//
//	clogdemo --filter-level trace --disable-tag COMM
//	clogdemo --backend zap --file app.log
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
