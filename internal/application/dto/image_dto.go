package dto

// EncodedImage imagen validada y codificada como data URL embebible.
// El cliente la asigna al campo image del producto; el servidor no la retiene.
type EncodedImage struct {
	DataURL     string `json:"data_url"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"` // bytes del archivo original
}
