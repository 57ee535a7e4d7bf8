package main

import (
	"errors"
	. "fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/p7r0x7/sha1ref"
	"github.com/p7r0x7/vainpath"
	. "github.com/spf13/pflag"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const n = "\n"
const success, failure, invalid, tooLarge = 0, 1, 2, 3

var warnings = 0

func main() {
	Parse()
	pStrict = pStrict || pDebug
	os.Exit(program())
}

// help prints a usage menu. To consistently correctly render this menu in most terminal windows,
// its content should be no wider than 80 columns.
func help() {
	origin, err := os.Executable()
	if err != nil {
		origin = "sha1sum" /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(os.Stderr, yell, "SHA-1 message digests, computed from first principles.", zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h]"+n,
		spaces, "[-btw] [-c <int>] [--lower] [--quiet|no-codes] [--strict] [-|PATH...]"+n,
		spaces, "[-btw] [-c <int>] [--lower] [--quiet|no-codes] [--strict] -s STRING..."+n+n+
			"Options:"+n)
	PrintDefaults()
	name = vainpath.Trim(origin, "…", 15)
	Fprint(os.Stderr, n+"With no arguments `", name, "` digests ", os.Stdin.Name(), ". `-` is also"+n+
		"treated as a reference to it. Messages larger than --capacity are rejected"+n+
		"before any hashing begins."+n)
}

// This program is a command-line interface for sha1ref: It handles various flags and an unlimited
// number of arguments, digesting files as required by the command-line operator.
func program() int {
	setupLog()
	if pHelp {
		help()
		return success
	} else if pCapacity <= 0 {
		log.WithField("capacity", pCapacity).Error("capacity must be at least 1 byte")
		return invalid
	}

	opts := sha1ref.Options{Capacity: pCapacity}
	if pLegacy {
		opts.Length = sha1ref.Length32
	}
	if pDebug {
		opts.Tracer = sha1ref.NewTextTracer(os.Stderr)
	}
	digest := sha1ref.NewWith(opts)

	targets := Args()
	if len(targets) == 0 && !pString {
		targets = []string{"-"}
	}
	for i, target := range targets {
		if i > 0 {
			digest.Reset()
		}
		start, delta := time.Now(), ""

		if err := feed(digest, target); errors.Is(err, sha1ref.ErrCapacity) {
			log.WithFields(map[string]interface{}{
				"target":   target,
				"capacity": digest.Capacity(),
			}).Error(err)
			return tooLarge
		} else if err != nil {
			warn(target, err)
			continue
		}
		sum := digest.Digest()

		if pTime {
			d := time.Since(start)
			if d.Microseconds() > 99 {
				d = d.Truncate(10 * time.Microsecond)
			}
			delta = " (" + d.String() + ")"
		}

		if pQuiet {
			Println(render(sum))
		} else if pString {
			Print(yell, render(sum), zero, `  "`, target, `"`, delta, n)
		} else if pNoCodes {
			Print(render(sum), `  `, filepath.Clean(target), delta, n)
		} else {
			Print(yell, render(sum), zero, `  `, und, vainpath.Simplify(target), zero, delta, n)
		}
	}

	if !pQuiet {
		if warnings == 1 {
			Fprint(os.Stderr, "1 ", purp, "target is a directory or is otherwise inaccessible.", zero, n)
		} else if warnings > 1 {
			Fprint(os.Stderr, warnings, " ", purp, "targets are directories or are otherwise inaccessible.", zero, n)
		}
	}
	if warnings > 0 {
		return failure
	}
	return success
}

// feed writes the message named by target into digest: the target itself under --string, standard
// input for `-`, otherwise the contents of the file at that path.
func feed(digest io.Writer, target string) error {
	switch {
	case pString:
		_, err := io.WriteString(digest, target)
		return err
	case target == "-" || target == os.Stdin.Name():
		_, err := io.Copy(digest, os.Stdin)
		go os.Stdin.Close() /* STDIN should not be reused. */
		return err
	default:
		file, err := os.Open(target)
		if err != nil {
			return err
		}
		defer file.Close()
		if _, err = io.Copy(digest, file); err != nil {
			return Errorf("%s: %w", target, err)
		}
		return nil
	}
}

// render formats sum according to --base64, --words and --lower.
func render(sum sha1ref.Digest) string {
	switch {
	case pBase64:
		return sum.Base64()
	case pWords && pLower:
		return strings.ToLower(sum.Words())
	case pWords:
		return sum.Words()
	case pLower:
		return strings.ToLower(sum.String())
	default:
		return sum.String()
	}
}

func warn(target string, err error) {
	if pStrict {
		panic(err)
	}
	log.WithField("target", target).Warn(err)
	warnings++
}
