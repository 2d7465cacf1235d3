package entity

// Setting es un par clave/valor de configuración de la tienda.
// Las claves de impuestos y envío se siembran pero el cálculo de totales
// no las consulta: el total de una solicitud es siempre la suma de sus detalles.
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Claves sembradas.
const (
	SettingIVA              = "iva"
	SettingCostoEnvio       = "costo_envio"
	SettingEnvioGratisDesde = "envio_gratis_desde"
	SettingMoneda           = "moneda"
)
