package lattice

import (
	"errors"

	"github.com/cs-au-dk/enclosure/utils"

	"github.com/fatih/color"
)

var colorize = struct {
	Const func(...interface{}) string
	Attr  func(...interface{}) string
}{
	Const: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiWhite).SprintFunc())(is...)
	},
	Attr: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiRed).SprintFunc())(is...)
	},
}

var errInvalidInterval = errors.New("invalid interval")
