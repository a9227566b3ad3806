package client

import (
	"context"
	"testing"

	"shopify-nft-minter/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeTokenURI(t *testing.T) {
	uri, err := encodeTokenURI(&model.NFTMetadata{
		Name:        "Tee",
		Description: "<p>A tee</p>",
		Image:       "https://cdn/tee.png",
	})

	require.NoError(t, err)
	assert.Equal(t,
		"data:application/json;base64,eyJuYW1lIjoiVGVlIiwiZGVzY3JpcHRpb24iOiI8cD5BIHRlZTwvcD4iLCJpbWFnZSI6Imh0dHBzOi8vY2RuL3RlZS5wbmcifQ==",
		uri,
	)
}

func TestMintTo_RejectsInvalidWalletAddress(t *testing.T) {
	c := &mintClientImpl{}

	_, err := c.MintTo(context.Background(), "not-a-wallet", &model.NFTMetadata{Name: "Tee"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidWalletAddress)
}
