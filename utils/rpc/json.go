// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package rpc sends JSON-RPC 2.0 requests to a gorilla/rpc server.
package rpc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/rpc/v2/json2"
)

var ErrUnexpectedStatus = errors.New("unexpected status code")

// SendJSONRequest calls [method] at [uri] and decodes the result into
// [reply].
func SendJSONRequest(
	ctx context.Context,
	client *http.Client,
	uri string,
	method string,
	params any,
	reply any,
) error {
	requestBody, err := json2.EncodeClientRequest(method, params)
	if err != nil {
		return fmt.Errorf("failed to encode client params: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, bytes.NewReader(requestBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(request)
	if err != nil {
		return fmt.Errorf("failed to issue request: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Join(
			fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode),
			CleanlyCloseBody(resp.Body),
		)
	}

	if err := json2.DecodeClientResponse(resp.Body, reply); err != nil {
		return errors.Join(
			fmt.Errorf("failed to decode client response: %w", err),
			CleanlyCloseBody(resp.Body),
		)
	}
	return CleanlyCloseBody(resp.Body)
}

// CleanlyCloseBody drains and closes [body] so the connection can be reused.
func CleanlyCloseBody(body io.ReadCloser) error {
	if body == nil {
		return nil
	}

	_, err := io.Copy(io.Discard, body)
	return errors.Join(err, body.Close())
}
