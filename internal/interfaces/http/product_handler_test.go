package http_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productJSON struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
	Stock    int    `json:"stock"`
}

type productListJSON struct {
	Items []productJSON `json:"items"`
	Total int           `json:"total"`
}

func listProducts(t *testing.T, env *testEnv, authHeader string) productListJSON {
	t.Helper()
	resp := env.doJSON(t, http.MethodGet, "/api/products", nil, authHeader)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out productListJSON
	decodeJSON(t, resp, &out)
	return out
}

// El inventario sembrado llega completo y en orden de inserción.
func TestProducts_ListaSembrada(t *testing.T) {
	env := newTestEnv(t)
	authHeader := env.login(t)

	out := listProducts(t, env, authHeader)
	require.Equal(t, 8, out.Total)
	assert.Equal(t, "Hennessy VS Cognac", out.Items[0].Name)
	assert.Equal(t, "Bacardi Superior Rum", out.Items[7].Name)
	assert.Equal(t, 1, out.Items[0].ID)
	assert.Equal(t, 8, out.Items[7].ID)
}

// Alta válida: el ID asignado es max(ids)+1 y el producto queda al final.
func TestProducts_CrearAsignaMaxMasUno(t *testing.T) {
	env := newTestEnv(t)
	authHeader := env.login(t)

	resp := env.doJSON(t, http.MethodPost, "/api/products", map[string]interface{}{
		"name":     "Buffalo Trace Bourbon",
		"category": "Whiskey",
		"price":    "10.50", // precio como cadena parseable
		"stock":    6,
		"cost":     "7.25",
		"abv":      "45%",
	}, authHeader)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created productJSON
	decodeJSON(t, resp, &created)
	assert.Equal(t, 9, created.ID, "con ids 1..8 sembrados, el nuevo debe ser 9")

	out := listProducts(t, env, authHeader)
	assert.Equal(t, 9, out.Total)
	assert.Equal(t, "Buffalo Trace Bourbon", out.Items[8].Name)
}

// Alta inválida: se reporta 400 VALIDATION y la lista no cambia.
func TestProducts_CrearInvalidoNoAltera(t *testing.T) {
	env := newTestEnv(t)
	authHeader := env.login(t)

	cases := []map[string]interface{}{
		{"name": "", "category": "Whiskey", "price": "10.50"},        // nombre vacío
		{"name": "   ", "category": "Whiskey", "price": "10.50"},     // nombre solo espacios
		{"name": "Algo", "category": "Refrescos", "price": "10.50"},  // categoría fuera del conjunto
		{"name": "Algo", "category": "Whiskey", "price": "0"},        // precio no positivo
		{"name": "Algo", "category": "Whiskey", "price": "-3"},       // precio negativo
		{"name": "Algo", "category": "Whiskey", "price": "5", "stock": -1}, // stock negativo
	}

	for _, payload := range cases {
		resp := env.doJSON(t, http.MethodPost, "/api/products", payload, authHeader)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.Contains(t, string(body), "VALIDATION")
	}

	out := listProducts(t, env, authHeader)
	assert.Equal(t, 8, out.Total, "las altas inválidas no deben agregar registros")
}

// Edición: reemplazo completo de la ficha, último escritor gana.
func TestProducts_Actualizar(t *testing.T) {
	env := newTestEnv(t)
	authHeader := env.login(t)

	resp := env.doJSON(t, http.MethodPut, "/api/products/2", map[string]interface{}{
		"name":        "Grey Goose Vodka 1L",
		"category":    "Vodka",
		"price":       "44.99",
		"cost":        "30.00",
		"stock":       4,
		"description": "Ultra-premium French vodka, smooth and crisp",
		"abv":         "40%",
	}, authHeader)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated productJSON
	decodeJSON(t, resp, &updated)
	assert.Equal(t, 2, updated.ID)
	assert.Equal(t, "Grey Goose Vodka 1L", updated.Name)
	assert.Equal(t, 4, updated.Stock)

	// La posición en la lista se conserva
	out := listProducts(t, env, authHeader)
	assert.Equal(t, "Grey Goose Vodka 1L", out.Items[1].Name)
}

func TestProducts_ActualizarInexistente_404(t *testing.T) {
	env := newTestEnv(t)
	authHeader := env.login(t)

	resp := env.doJSON(t, http.MethodPut, "/api/products/999", map[string]interface{}{
		"name":     "Fantasma",
		"category": "Whiskey",
		"price":    "10.00",
	}, authHeader)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Baja: elimina exactamente ese registro; un ID inexistente es no-op (204).
func TestProducts_Eliminar(t *testing.T) {
	env := newTestEnv(t)
	authHeader := env.login(t)

	resp := env.doJSON(t, http.MethodDelete, "/api/products/3", nil, authHeader)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	out := listProducts(t, env, authHeader)
	assert.Equal(t, 7, out.Total)
	for _, item := range out.Items {
		assert.NotEqual(t, 3, item.ID)
	}

	// ID inexistente: longitud sin cambios, también 204
	resp2 := env.doJSON(t, http.MethodDelete, "/api/products/999", nil, authHeader)
	resp2.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp2.StatusCode)
	assert.Equal(t, 7, listProducts(t, env, authHeader).Total)
}

func TestProducts_ObtenerPorID(t *testing.T) {
	env := newTestEnv(t)
	authHeader := env.login(t)

	resp := env.doJSON(t, http.MethodGet, "/api/products/5", nil, authHeader)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got productJSON
	decodeJSON(t, resp, &got)
	assert.Equal(t, "Dom Pérignon Champagne", got.Name)

	missing := env.doJSON(t, http.MethodGet, "/api/products/999", nil, authHeader)
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)

	badID := env.doJSON(t, http.MethodGet, "/api/products/abc", nil, authHeader)
	defer badID.Body.Close()
	assert.Equal(t, http.StatusBadRequest, badID.StatusCode)
}
