// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package json

import (
	"fmt"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gorilla/rpc/v2"
	"github.com/gorilla/rpc/v2/json2"
)

var (
	_ rpc.Codec        = (*codec)(nil)
	_ rpc.CodecRequest = (*request)(nil)
)

// NewCodec returns a JSON-RPC 2.0 codec that accepts method names whose
// function part starts in lowercase, e.g. "mint.tokenURI".
func NewCodec() rpc.Codec {
	return &codec{codec: json2.NewCodec()}
}

type codec struct {
	codec *json2.Codec
}

func (c *codec) NewRequest(r *http.Request) rpc.CodecRequest {
	return &request{CodecRequest: c.codec.NewRequest(r)}
}

type request struct {
	rpc.CodecRequest
}

func (r *request) Method() (string, error) {
	method, err := r.CodecRequest.Method()
	if err != nil {
		return method, err
	}

	class, function, ok := strings.Cut(method, ".")
	if !ok {
		return method, nil
	}
	firstRune, runeLen := utf8.DecodeRuneInString(function)
	if firstRune == utf8.RuneError {
		return method, nil
	}
	return fmt.Sprintf("%s.%c%s", class, unicode.ToUpper(firstRune), function[runeLen:]), nil
}
