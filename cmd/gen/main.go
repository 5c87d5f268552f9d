package main

import (
	"foodbridge/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.DonorProfileModel{},
		model.NgoProfileModel{},
		model.AuthenticationModel{},
		model.AddressModel{},
		model.FoodItemModel{},
		model.DeliveryModel{},
		model.MatchNotificationModel{},
		model.MatchLogModel{},
		model.NgoDeviceModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
