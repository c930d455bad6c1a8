package basketController

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiorino-shop/florista-api/basket"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/basket", nil)
	return c, rec
}

func TestReadBasketWithoutCookie(t *testing.T) {
	c, _ := testContext(t)
	assert.Empty(t, readBasket(c))
}

func TestReadBasketMalformedCookieResetsToEmpty(t *testing.T) {
	c, _ := testContext(t)
	c.Request.AddCookie(&http.Cookie{Name: basket.CookieName, Value: "tampered!!"})
	assert.Empty(t, readBasket(c))
}

func TestBasketCookieRoundTrip(t *testing.T) {
	c, rec := testContext(t)
	b := basket.Basket{}.Add(3).Add(3).Add(7)
	writeBasket(c, b)

	res := rec.Result()
	cookies := res.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, basket.CookieName, cookies[0].Name)
	assert.Equal(t, "/", cookies[0].Path)

	decoded, err := basket.Decode(cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, b, decoded)
}
