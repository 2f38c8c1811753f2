// Command netlog reads log lines from stdin and delivers each one to a
// remote collector. A failed delivery ends the run with a nonzero
// exit: there is no buffering and no automatic reconnection.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/opd-ai/netlog"
	"github.com/opd-ai/netlog/config"
)

func main() {
	var (
		configPath  = flag.String("config", "", "collector config file (YAML)")
		destination = flag.String("dest", "", "collector hostname or address")
		port        = flag.String("port", "", "collector port or service name")
		transport   = flag.String("transport", "", "tcp or udp")
		family      = flag.String("family", "", "ipv4 or ipv6")
		verbose     = flag.BoolP("verbose", "v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	collector, err := resolveConfig(*configPath, *destination, *port, *transport, *family)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	if err := run(collector); err != nil {
		logrus.WithError(err).Error("delivery failed")
		os.Exit(1)
	}
}

// resolveConfig builds the collector endpoint from the config file, if
// any, with flags overriding individual fields.
func resolveConfig(path, destination, port, transport, family string) (config.Collector, error) {
	c := config.Default()

	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Collector{}, err
		}
		c = loaded
	}

	if destination != "" {
		c.Destination = destination
	}
	if port != "" {
		c.Port = port
	}
	if transport != "" {
		c.Transport = transport
	}
	if family != "" {
		c.Family = family
	}

	if err := c.Validate(); err != nil {
		return config.Collector{}, err
	}
	return c, nil
}

func run(c config.Collector) error {
	tgt := c.NewTarget()
	if err := c.Open(tgt); err != nil {
		return err
	}
	defer tgt.Close()

	logrus.WithFields(logrus.Fields{
		"destination": c.Destination,
		"port":        c.Port,
		"transport":   c.Transport,
		"family":      c.Family,
	}).Debug("collector opened")

	w := netlog.NewWriter(tgt)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if _, err := w.Write(scanner.Bytes()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
