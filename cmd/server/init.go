package main

import (
	"context"

	"github.com/prisweb123/neuto-backend/config"
	authmodels "github.com/prisweb123/neuto-backend/internal/api/auth/models"
	catalogmodels "github.com/prisweb123/neuto-backend/internal/api/catalog/models"
	offermodels "github.com/prisweb123/neuto-backend/internal/api/offer/models"
	"github.com/prisweb123/neuto-backend/internal/database"
	"github.com/prisweb123/neuto-backend/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Products = "products"
	global.MongoDB_ColNames.Packages = "packages"
	global.MongoDB_ColNames.OptionPackages = "option_packages"
	global.MongoDB_ColNames.PriceOffers = "price_offers"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (global.InitValidator đăng ký custom validators: no_xss, strong_password)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server.
// Thiếu JWT_SECRET hoặc MONGODB_CONNECTION_URI thì NewConfig trả nil và server dừng ngay.
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các db và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection. Các unique index (email, mobile,
	// offerNo, tên sản phẩm) là chốt chặn trùng dữ liệu nên thiếu index là dừng server.
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	indexTargets := []struct {
		colName string
		model   interface{}
	}{
		{global.MongoDB_ColNames.Users, authmodels.User{}},
		{global.MongoDB_ColNames.Products, catalogmodels.Product{}},
		{global.MongoDB_ColNames.Packages, catalogmodels.Package{}},
		{global.MongoDB_ColNames.OptionPackages, catalogmodels.OptionPackage{}},
		{global.MongoDB_ColNames.PriceOffers, offermodels.PriceOffer{}},
	}
	for _, target := range indexTargets {
		if err := database.CreateIndexes(context.TODO(), db.Collection(target.colName), target.model); err != nil {
			logrus.Fatalf("Failed to create indexes for collection %s: %v", target.colName, err)
		}
	}
	logrus.Info("Created indexes for all collections")
}
