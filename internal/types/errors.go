package types

import "errors"

var (
	ErrMalformedMarketData = errors.New("malformed market data")
	ErrInvalidDecision     = errors.New("invalid trading decision")
	ErrMalformedResponse   = errors.New("malformed completion response")
	ErrLeverageSet         = errors.New("leverage set failed")
	ErrOrderRejected       = errors.New("order rejected")
	ErrMarketDataFetch     = errors.New("market data fetch failed")
)

// ErrorKind names the error kind carried by err, or "Unknown".
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMalformedMarketData):
		return "MalformedMarketData"
	case errors.Is(err, ErrInvalidDecision):
		return "InvalidDecision"
	case errors.Is(err, ErrMalformedResponse):
		return "MalformedResponse"
	case errors.Is(err, ErrLeverageSet):
		return "LeverageSetError"
	case errors.Is(err, ErrOrderRejected):
		return "OrderRejected"
	case errors.Is(err, ErrMarketDataFetch):
		return "MarketDataFetchError"
	default:
		return "Unknown"
	}
}
