package i18n

// messages holds the per-locale catalogs. Keys are shared across locales;
// en-US is the reference set and must stay complete.
var messages = map[string]map[string]string{
	"en-US": {
		"error.title.validation":              "Validation Failed",
		"validation.error.detail":             "One or more fields are invalid",
		"error.title.malformed":               "Malformed Request",
		"malformed.request.detail":            "The request could not be understood",
		"malformed.parameter":                 "parameter '%s' has an invalid value",
		"malformed.body":                      "the request body could not be parsed",
		"error.title.product.not.found":       "Product Not Found",
		"product.not.found.detail":            "No product exists with the given public id",
		"error.title.product.already.exists":  "Product Already Exists",
		"product.already.exists.detail":       "A product with the given name already exists",
		"error.title.constraint.violation":    "Data Constraint Violation",
		"constraint.violation.detail":         "The operation violates a data integrity constraint",
		"error.title.internal":                "Internal Server Error",
		"internal.error.detail":               "An unexpected error occurred",
		"error.title.request":                 "Request Error",

		"validation.name.required":     "name is required and must not be blank",
		"validation.name.size":         "name must be between 3 and 100 characters",
		"validation.price.required":    "price is required",
		"validation.price.min":         "price must be at least 0.01",
		"validation.price.max":         "price must not exceed 999999.99",
		"validation.price.scale":       "price must have at most two decimal places",
		"validation.description.size":  "description must not exceed 500 characters",
		"validation.quantity.required": "quantity is required",
		"validation.quantity.min":      "quantity must be at least 0",
		"validation.quantity.max":      "quantity must not exceed 999999",
		"validation.invalid":           "invalid value",

		"validation.businessrule.lowvalue":  "low-value products (price below 10.00) cannot have a quantity greater than 100",
		"validation.businessrule.highvalue": "high-value products (price above 10000.00) cannot have a quantity greater than 10",

		"query.name.size":              "name filter must be between 1 and 50 characters",
		"query.price.bounds":           "price filter must be between 0.01 and 999999.99",
		"query.quantity.bounds":        "quantity filter must be between 0 and 999999",
		"query.price.range.invalid":    "maxPrice must be greater than or equal to minPrice",
		"query.quantity.range.invalid": "maxQuantity must be greater than or equal to minQuantity",
	},
	"pt-BR": {
		"error.title.validation":              "Falha de Validação",
		"validation.error.detail":             "Um ou mais campos são inválidos",
		"error.title.malformed":               "Requisição Malformada",
		"malformed.request.detail":            "A requisição não pôde ser compreendida",
		"malformed.parameter":                 "o parâmetro '%s' possui um valor inválido",
		"malformed.body":                      "o corpo da requisição não pôde ser interpretado",
		"error.title.product.not.found":       "Produto Não Encontrado",
		"product.not.found.detail":            "Não existe produto com o id público informado",
		"error.title.product.already.exists":  "Produto Já Existe",
		"product.already.exists.detail":       "Já existe um produto com o nome informado",
		"error.title.constraint.violation":    "Violação de Restrição de Dados",
		"constraint.violation.detail":         "A operação viola uma restrição de integridade de dados",
		"error.title.internal":                "Erro Interno do Servidor",
		"internal.error.detail":               "Ocorreu um erro inesperado",
		"error.title.request":                 "Erro de Requisição",

		"validation.name.required":     "name é obrigatório e não pode ficar em branco",
		"validation.name.size":         "name deve ter entre 3 e 100 caracteres",
		"validation.price.required":    "price é obrigatório",
		"validation.price.min":         "price deve ser no mínimo 0.01",
		"validation.price.max":         "price não pode exceder 999999.99",
		"validation.price.scale":       "price deve ter no máximo duas casas decimais",
		"validation.description.size":  "description não pode exceder 500 caracteres",
		"validation.quantity.required": "quantity é obrigatório",
		"validation.quantity.min":      "quantity deve ser no mínimo 0",
		"validation.quantity.max":      "quantity não pode exceder 999999",
		"validation.invalid":           "valor inválido",

		"validation.businessrule.lowvalue":  "produtos de baixo valor (preço abaixo de 10.00) não podem ter quantidade maior que 100",
		"validation.businessrule.highvalue": "produtos de alto valor (preço acima de 10000.00) não podem ter quantidade maior que 10",

		"query.name.size":              "o filtro name deve ter entre 1 e 50 caracteres",
		"query.price.bounds":           "o filtro de preço deve estar entre 0.01 e 999999.99",
		"query.quantity.bounds":        "o filtro de quantidade deve estar entre 0 e 999999",
		"query.price.range.invalid":    "maxPrice deve ser maior ou igual a minPrice",
		"query.quantity.range.invalid": "maxQuantity deve ser maior ou igual a minQuantity",
	},
	"es-ES": {
		"error.title.validation":              "Validación Fallida",
		"validation.error.detail":             "Uno o más campos no son válidos",
		"error.title.malformed":               "Solicitud Malformada",
		"malformed.request.detail":            "La solicitud no pudo ser comprendida",
		"malformed.parameter":                 "el parámetro '%s' tiene un valor inválido",
		"malformed.body":                      "el cuerpo de la solicitud no pudo ser interpretado",
		"error.title.product.not.found":       "Producto No Encontrado",
		"product.not.found.detail":            "No existe un producto con el id público indicado",
		"error.title.product.already.exists":  "El Producto Ya Existe",
		"product.already.exists.detail":       "Ya existe un producto con el nombre indicado",
		"error.title.constraint.violation":    "Violación de Restricción de Datos",
		"constraint.violation.detail":         "La operación viola una restricción de integridad de datos",
		"error.title.internal":                "Error Interno del Servidor",
		"internal.error.detail":               "Ocurrió un error inesperado",
		"error.title.request":                 "Error de Solicitud",

		"validation.name.required":     "name es obligatorio y no puede estar en blanco",
		"validation.name.size":         "name debe tener entre 3 y 100 caracteres",
		"validation.price.required":    "price es obligatorio",
		"validation.price.min":         "price debe ser como mínimo 0.01",
		"validation.price.max":         "price no puede exceder 999999.99",
		"validation.price.scale":       "price debe tener como máximo dos decimales",
		"validation.description.size":  "description no puede exceder 500 caracteres",
		"validation.quantity.required": "quantity es obligatorio",
		"validation.quantity.min":      "quantity debe ser como mínimo 0",
		"validation.quantity.max":      "quantity no puede exceder 999999",
		"validation.invalid":           "valor inválido",

		"validation.businessrule.lowvalue":  "los productos de bajo valor (precio menor a 10.00) no pueden tener una cantidad mayor a 100",
		"validation.businessrule.highvalue": "los productos de alto valor (precio mayor a 10000.00) no pueden tener una cantidad mayor a 10",

		"query.name.size":              "el filtro name debe tener entre 1 y 50 caracteres",
		"query.price.bounds":           "el filtro de precio debe estar entre 0.01 y 999999.99",
		"query.quantity.bounds":        "el filtro de cantidad debe estar entre 0 y 999999",
		"query.price.range.invalid":    "maxPrice debe ser mayor o igual que minPrice",
		"query.quantity.range.invalid": "maxQuantity debe ser mayor o igual que minQuantity",
	},
}
