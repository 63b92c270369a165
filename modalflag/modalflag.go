// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"flag"
	"io"
	"strings"
)

const modeSeparator = "/"

// Modes parses a command line one mode layer at a time. The Output field
// should be set before the first call to Parse() or help messages will be
// lost.
type Modes struct {
	// where to print help messages. defaults to io.Discard
	Output io.Writer

	// the flagset for the current layer. recreated by NewArgs() and
	// NewMode()
	flags *flag.FlagSet

	// arguments not yet consumed by a call to Parse()
	args []string

	// sub-modes valid for the current layer. index zero is the default
	subModes []string

	// every mode encountered so far. never reset
	path []string

	// free-form text appended to the generated help
	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the last mode to be encountered.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode encountered during parsing, joined with a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs begins parsing of a fresh argument list. A program would
// normally pass os.Args[1:].
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.NewMode()
}

// NewMode begins a new layer. Flags and sub-modes declared from this point
// belong to the mode most recently returned by Mode().
func (md *Modes) NewMode() {
	md.subModes = []string{}
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
}

// AddSubModes declares the sub-modes valid for the next call to Parse().
// The first in the list is the default. Comparison with the command line
// is case insensitive.
func (md *Modes) AddSubModes(submodes ...string) {
	md.subModes = append(md.subModes, submodes...)
	for i := range md.subModes {
		md.subModes[i] = strings.ToUpper(md.subModes[i])
	}
}

// AdditionalHelp supplements the generated flag help with a longer
// explanation of the current mode.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// parsing of this layer succeeded. if sub-modes were declared the
	// Mode() function says which one was selected
	ParseContinue ParseResult = iota

	// help was requested and has been printed. nothing more to do
	ParseHelp

	// the command line could not be parsed. the accompanying error says
	// why
	ParseError
)

// Parse the current layer of arguments.
//
// Help output is written to the Output field as a side effect, so a caller
// seeing ParseHelp need print nothing further.
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args)
	if err != nil {
		if err == flag.ErrHelp {
			out := md.Output
			if out == nil {
				out = io.Discard
			}
			hw.Help(out, md.Path(), md.subModes, md.additionalHelp)
			return ParseHelp, nil
		}
		return ParseError, err
	}

	md.args = md.flags.Args()

	if len(md.subModes) > 0 {
		arg := strings.ToUpper(md.flags.Arg(0))

		// assume the default sub-mode until the first argument proves
		// otherwise
		mode := md.subModes[0]
		for i := range md.subModes {
			if md.subModes[i] == arg {
				mode = arg
				md.args = md.args[1:]
				break // for loop
			}
		}

		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs are the arguments left over after a call to Parse(), ie.
// those that are neither flags nor a listed sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.args
}

// GetArg returns the numbered remaining argument, or the empty string if
// there is no such argument.
func (md *Modes) GetArg(i int) string {
	if i >= len(md.args) {
		return ""
	}
	return md.args[i]
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}
