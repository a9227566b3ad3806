package model

// Wire types for the Shopify Admin REST API. Only the fields this service reads
// are mapped; the admin API returns far more.

type OrderEnvelope struct {
	Order Order `json:"order"`
}

type Order struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	LineItems []LineItem `json:"line_items"`
}

type LineItem struct {
	ID         int64          `json:"id"`
	ProductID  int64          `json:"product_id"`
	Title      string         `json:"title"`
	Quantity   int            `json:"quantity"`
	Properties []ItemProperty `json:"properties"`
}

// ItemProperty is a buyer-supplied custom property on a line item. The wallet
// address the NFT is minted to travels as the property named "Wallet Address".
type ItemProperty struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type ProductEnvelope struct {
	Product Product `json:"product"`
}

type Product struct {
	ID       int64        `json:"id"`
	Title    string       `json:"title"`
	BodyHTML string       `json:"body_html"`
	Image    ProductImage `json:"image"`
}

type ProductImage struct {
	Src string `json:"src"`
}
