// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package json

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/rpc/v2/json2"
	"github.com/stretchr/testify/require"
)

func TestUint64(t *testing.T) {
	require := require.New(t)

	b, err := json.Marshal(Uint64(3333))
	require.NoError(err)
	require.JSONEq(`"3333"`, string(b))

	var u Uint64
	require.NoError(json.Unmarshal([]byte(`"42"`), &u))
	require.Equal(Uint64(42), u)

	require.NoError(json.Unmarshal([]byte(`7`), &u))
	require.Equal(Uint64(7), u)

	require.Error(json.Unmarshal([]byte(`"-1"`), &u))
}

func TestCodecUppercasesMethod(t *testing.T) {
	tests := []struct {
		method string
		want   string
	}{
		{method: "mint.tokenURI", want: "mint.TokenURI"},
		{method: "mint.Info", want: "mint.Info"},
		{method: "mint.walletOfOwner", want: "mint.WalletOfOwner"},
		{method: "nodot", want: "nodot"},
	}
	for _, test := range tests {
		t.Run(test.method, func(t *testing.T) {
			require := require.New(t)

			body, err := json2.EncodeClientRequest(test.method, struct{}{})
			require.NoError(err)

			r := httptest.NewRequest("POST", "/", bytes.NewReader(body))
			method, err := NewCodec().NewRequest(r).Method()
			require.NoError(err)
			require.Equal(test.want, method)
		})
	}
}
