package main

import (
	"github.com/RoyceAzure/lab/storefront/internal/cmd"
	"github.com/shopspring/decimal"
)

// @title storefront
// @version 1.0
// @description 電商後台 API: 商品, 評論, 購物車, 訂單與後台管理
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:5000
// @BasePath  /api

// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        Authorization
// @description                 Description for Authorization header: Type "Bearer" followed by a space and the token. Example: "Bearer {token}"

func main() {
	// 金額以數字輸出
	decimal.MarshalJSONWithoutQuotes = true

	cmd.Execute()
}
