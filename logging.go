// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package rankn

import (
	"io"
	"log/slog"

	"github.com/wdamron/rankn/types"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// typeValue renders a type for structured logging only when the record is actually emitted.
type typeValue struct {
	t types.Type
}

func (v typeValue) LogValue() slog.Value { return slog.StringValue(types.TypeString(v.t)) }

type slotsValue []*types.Slot

func (v slotsValue) LogValue() slog.Value {
	names := make([]string, len(v))
	for i, s := range v {
		names[i] = types.TypeString(s)
	}
	return slog.AnyValue(names)
}
