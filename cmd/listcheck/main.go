// Command listcheck exercises the list package through a fixed sequence
// of operations, printing the list at each checkpoint. It exits with status 1
// on the first check that does not hold.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	log "github.com/sjqzhang/seelog"
)

const logConfig = `
<seelog minlevel="{LEVEL}">
	<outputs formatid="common">
		<console/>
	</outputs>
	<formats>
		<format id="common" format="%Date %Time [%LEV] %Msg%n"/>
	</formats>
</seelog>
`

func main() {
	debug := flag.Bool("debug", false, "validate anchors of link and unlink operations")
	level := flag.String("loglevel", "info", "minimum level of log messages (trace, debug, info, warn, error)")
	flag.Parse()

	if err := initLogger(*level); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	err := run(os.Stdout, *debug)
	if err != nil {
		log.Error(err)
	} else {
		log.Info("all checks passed")
	}
	log.Flush()

	if err != nil {
		os.Exit(1)
	}
}

func initLogger(level string) error {
	logger, err := log.LoggerFromConfigAsBytes([]byte(strings.Replace(logConfig, "{LEVEL}", level, 1)))
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	return log.ReplaceLogger(logger)
}
