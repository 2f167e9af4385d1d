// Command arraydemo loads integers into a dynamic array and prints what the
// unsorted and sorted lookups report for each of them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/hyperbolic-timechamber/ordered-arrays-go/src/comparator"
	"github.com/hyperbolic-timechamber/ordered-arrays-go/src/dynamicarray"
	"github.com/hyperbolic-timechamber/ordered-arrays-go/src/logging"
	"github.com/hyperbolic-timechamber/ordered-arrays-go/src/result"
	"github.com/hyperbolic-timechamber/ordered-arrays-go/src/sortedarray"
)

type Configuration struct {
	Items     string
	Growth    string
	Head      bool
	LogLevel  string
	LogFile   string
	LogFormat string
}

func main() {
	os.Exit(runMain(parseArguments(), os.Stdout))
}

// runMain returns the process exit code. Logging is closed before it
// returns so the log file is flushed on every path.
func runMain(config Configuration, out io.Writer) int {
	if err := logging.Init(logging.Config{
		Level:      logging.Level(config.LogLevel),
		OutputPath: config.LogFile,
		Format:     config.LogFormat,
	}); err != nil {
		log.Printf("failed to initialize logging: %v", err)
		return 1
	}
	defer logging.Close()

	if err := run(config, out); err != nil {
		logging.WithError(err).Error("demo failed", "code", result.Of(err).String())
		return 1
	}
	return 0
}

func parseArguments() Configuration {
	var config Configuration

	flag.StringVar(&config.Items, "items", "5,3,8,1", "Comma separated integers to insert")
	flag.StringVar(&config.Growth, "growth", "exact", "Growth policy: exact or doubling")
	flag.BoolVar(&config.Head, "head", false, "Insert at the head instead of the tail")
	flag.StringVar(&config.LogLevel, "log-level", "INFO", "DEBUG, INFO, WARN or ERROR")
	flag.StringVar(&config.LogFile, "log-file", "", "Append logs to this file instead of stderr")
	flag.StringVar(&config.LogFormat, "log-format", "text", "text or json")

	flag.Parse()

	return config
}

func parseItems(s string) ([]int, error) {
	var items []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", field, err)
		}
		items = append(items, v)
	}
	return items, nil
}

func run(config Configuration, out io.Writer) error {
	items, err := parseItems(config.Items)
	if err != nil {
		return err
	}
	growth, err := dynamicarray.ParseGrowthPolicy(config.Growth)
	if err != nil {
		return fmt.Errorf("growth %q: %w", config.Growth, err)
	}

	arr, err := dynamicarray.New(comparator.Ordered[int](), dynamicarray.WithGrowth[int](growth))
	if err != nil {
		return result.Wrap(result.Of(err), "create")
	}
	defer arr.Destroy()

	insert := arr.InsertAtTail
	if config.Head {
		insert = arr.InsertAtHead
	}
	for _, v := range items {
		if err := insert(v); err != nil {
			return result.Wrap(result.Of(err), "insert")
		}
	}
	logging.WithOp("insert").Info("loaded items",
		"count", arr.Size(),
		"capacity", arr.Capacity(),
		"growth", growth.String(),
		"item_size", arr.ItemSize())

	fmt.Fprintf(out, "array:  %v\n", arr.Values())
	if ref, err := arr.Max(); err == nil {
		fmt.Fprintf(out, "max:    %d\n", ref.MustValue())
	} else {
		report(out, "max", err)
	}
	for _, v := range items {
		rank, err := arr.Rank(v)
		if err != nil {
			report(out, fmt.Sprintf("rank(%d)", v), err)
			continue
		}
		line := fmt.Sprintf("rank(%d)=%d", v, rank)
		if ref, err := arr.Predecessor(v); err == nil {
			line += fmt.Sprintf(" pred=%d", ref.MustValue())
		} else {
			line += " pred=" + result.Of(err).String()
		}
		fmt.Fprintln(out, line)
	}

	if err := arr.Sort(); err != nil {
		return result.Wrap(result.Of(err), "sort")
	}
	logging.WithOp("sort").Debug("sorted", "sorted", sortedarray.IsSorted(arr))
	fmt.Fprintf(out, "sorted: %v\n", arr.Values())

	for _, v := range items {
		idx, err := sortedarray.Rank(arr, v)
		if err != nil {
			report(out, fmt.Sprintf("sorted rank(%d)", v), err)
			continue
		}
		line := fmt.Sprintf("index(%d)=%d", v, idx)
		line += " pred=" + describe(sortedarray.Predecessor(arr, v))
		line += " succ=" + describe(sortedarray.Successor(arr, v))
		fmt.Fprintln(out, line)
	}
	return nil
}

func describe(ref dynamicarray.Ref[int], err error) string {
	if err != nil {
		return result.Of(err).String()
	}
	return strconv.Itoa(ref.MustValue())
}

func report(out io.Writer, what string, err error) {
	var code result.Code
	if errors.As(err, &code) {
		logging.WithOp(what).Warn("lookup failed", "code", code.String())
	}
	fmt.Fprintf(out, "%s: %s\n", what, result.Of(err).String())
}
