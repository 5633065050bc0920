package gateway

import (
	"context"
	"fmt"
)

// PaymentClient requests payment signatures from the upstream backend.
// The actual charge happens on the external gateway after redirect.
type PaymentClient interface {
	RequestSignature(ctx context.Context, token string, req SignatureRequest) (*SignatureResponse, error)
}

type HTTPPaymentClient struct {
	baseClient
}

// RequestSignature asks the backend to sign (total, transaction id) for
// the gateway form POST.
func (c *HTTPPaymentClient) RequestSignature(ctx context.Context, token string, req SignatureRequest) (*SignatureResponse, error) {
	var resp SignatureResponse
	endpoint := c.url("/payment/signature")

	if err := c.http.PostJSON(ctx, endpoint, authHeaders(token), req, &resp); err != nil {
		return nil, err
	}

	if resp.Signature == "" {
		return nil, fmt.Errorf("backend did not return a payment signature")
	}
	if resp.GatewayURL == "" {
		return nil, fmt.Errorf("backend did not return a payment gateway URL")
	}

	return &resp, nil
}
