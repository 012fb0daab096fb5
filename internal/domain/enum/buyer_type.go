package enum

// BuyerType classifies the buyer on a POS transaction. An empty value means
// an anonymous walk-in buyer.
type BuyerType string

const (
	BuyerTypeB2B BuyerType = "b2b"
	BuyerTypeB2C BuyerType = "b2c"
)

// IsAnonymous reports whether no buyer classification was captured.
func (b BuyerType) IsAnonymous() bool {
	return b != BuyerTypeB2B && b != BuyerTypeB2C
}
