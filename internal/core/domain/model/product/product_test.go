package product_test

import (
	"strings"
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	productID, _ := kernel.NewProductID(7)

	t.Run("creates product without image", func(t *testing.T) {
		p, err := product.NewProduct(productID, "REF-100", "Caja de tornillos")

		require.NoError(t, err)
		assert.Equal(t, productID, p.ID())
		assert.Equal(t, "REF-100", p.Reference())
		assert.Nil(t, p.ImageURL())
		require.NoError(t, p.Validate())
	})

	t.Run("requires a reference", func(t *testing.T) {
		_, err := product.NewProduct(productID, "", "Caja de tornillos")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects overlong reference", func(t *testing.T) {
		_, err := product.NewProduct(productID, strings.Repeat("x", 101), "")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestProduct_SetImage(t *testing.T) {
	productID, _ := kernel.NewProductID(7)

	t.Run("stores the url without interpreting it", func(t *testing.T) {
		p, err := product.NewProduct(productID, "REF-100", "")
		require.NoError(t, err)

		url := "https://blobs.example/products/ref-100.png?sig=abc%20def"
		require.NoError(t, p.SetImage(url))

		require.NotNil(t, p.ImageURL())
		assert.Equal(t, url, *p.ImageURL())
	})

	t.Run("rejects an empty url", func(t *testing.T) {
		p, err := product.NewProduct(productID, "REF-100", "")
		require.NoError(t, err)

		require.ErrorIs(t, p.SetImage(""), errs.ErrValueIsRequired)
	})
}

func TestProduct_ClearImage(t *testing.T) {
	productID, _ := kernel.NewProductID(7)

	t.Run("clears a set image", func(t *testing.T) {
		p, err := product.NewProduct(productID, "REF-100", "")
		require.NoError(t, err)
		require.NoError(t, p.SetImage("https://blobs.example/x.png"))

		p.ClearImage()

		assert.Nil(t, p.ImageURL())
	})

	t.Run("clearing twice is not an error", func(t *testing.T) {
		p, err := product.NewProduct(productID, "REF-100", "")
		require.NoError(t, err)

		p.ClearImage()
		p.ClearImage()

		assert.Nil(t, p.ImageURL())
	})
}

func TestRestoreProduct(t *testing.T) {
	productID, _ := kernel.NewProductID(7)

	t.Run("restores image url", func(t *testing.T) {
		url := "https://blobs.example/x.png"
		p, err := product.RestoreProduct(productID, "REF-100", "Caja", &url)

		require.NoError(t, err)
		require.NotNil(t, p.ImageURL())
		assert.Equal(t, url, *p.ImageURL())
	})

	t.Run("rejects invalid stored state", func(t *testing.T) {
		empty := ""
		_, err := product.RestoreProduct(productID, "REF-100", "Caja", &empty)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
