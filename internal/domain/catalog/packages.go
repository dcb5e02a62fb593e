package catalog

import "insureflow/internal/domain/entity"

var (
	identityDocuments = []string{"CMND/CCCD"}
	vehicleDocuments  = []string{"CMND/CCCD", "Giấy đăng ký xe (cà vẹt)", "Giấy phép lái xe"}
	propertyDocuments = []string{"CMND/CCCD", "Giấy chứng nhận quyền sở hữu nhà"}
)

var packages = []*entity.InsurancePackage{
	{
		ID:     "life-basic",
		Type:   entity.InsuranceTypeLife,
		Name:   "Bảo hiểm Nhân thọ An Tâm",
		Price:  2_500_000,
		Period: "1 năm",
		Benefits: []string{
			"Quyền lợi tử vong đến 500 triệu đồng",
			"Thương tật toàn bộ vĩnh viễn",
			"Miễn đóng phí khi mắc bệnh hiểm nghèo",
		},
		Coverage:          "Tối đa 500.000.000 ₫",
		RequiredDocuments: identityDocuments,
		Exclusions:        []string{"Tự tử trong 2 năm đầu", "Tham gia hoạt động phạm pháp"},
		Featured:          true,
	},
	{
		ID:     "life-premium",
		Type:   entity.InsuranceTypeLife,
		Name:   "Bảo hiểm Nhân thọ Thịnh Vượng",
		Price:  8_000_000,
		Period: "1 năm",
		Benefits: []string{
			"Quyền lợi tử vong đến 2 tỷ đồng",
			"Quỹ tích lũy hưởng lãi",
			"Bảo hiểm bệnh hiểm nghèo 50 bệnh",
		},
		Coverage:          "Tối đa 2.000.000.000 ₫",
		RequiredDocuments: identityDocuments,
		DetailedBenefits: []entity.BenefitCategory{
			{Category: "Bảo vệ", Items: []string{"Tử vong", "Thương tật toàn bộ vĩnh viễn"}},
			{Category: "Tích lũy", Items: []string{"Lãi suất cam kết 3%/năm", "Thưởng duy trì hợp đồng"}},
		},
		Exclusions: []string{"Tự tử trong 2 năm đầu", "Bệnh có sẵn không kê khai"},
	},
	{
		ID:     "health-basic",
		Type:   entity.InsuranceTypeHealth,
		Name:   "Bảo hiểm Sức khỏe Gia đình",
		Price:  3_200_000,
		Period: "1 năm",
		Benefits: []string{
			"Nội trú đến 100 triệu đồng/năm",
			"Ngoại trú đến 10 triệu đồng/năm",
			"Bảo vệ tối đa 5 thành viên",
		},
		Coverage:          "Tối đa 100.000.000 ₫/năm",
		RequiredDocuments: identityDocuments,
		Featured:          true,
	},
	{
		ID:     "health-premium",
		Type:   entity.InsuranceTypeHealth,
		Name:   "Bảo hiểm Sức khỏe Toàn diện",
		Price:  9_500_000,
		Period: "1 năm",
		Benefits: []string{
			"Nội trú đến 500 triệu đồng/năm",
			"Thai sản và nha khoa",
			"Bảo lãnh viện phí tại bệnh viện quốc tế",
		},
		Coverage:          "Tối đa 500.000.000 ₫/năm",
		RequiredDocuments: identityDocuments,
		DetailedBenefits: []entity.BenefitCategory{
			{Category: "Nội trú", Items: []string{"Tiền giường", "Phẫu thuật", "Chăm sóc đặc biệt"}},
			{Category: "Ngoại trú", Items: []string{"Khám bệnh", "Xét nghiệm", "Nha khoa"}},
		},
	},
	{
		ID:     "vehicle-basic",
		Type:   entity.InsuranceTypeVehicle,
		Name:   "Bảo hiểm Trách nhiệm Dân sự Xe máy",
		Price:  66_000,
		Period: "1 năm",
		Benefits: []string{
			"Bồi thường thiệt hại về người đến 150 triệu đồng/vụ",
			"Bồi thường thiệt hại tài sản đến 50 triệu đồng/vụ",
		},
		Coverage:          "Theo quy định bắt buộc",
		RequiredDocuments: vehicleDocuments,
		Featured:          true,
	},
	{
		ID:     "vehicle-comprehensive",
		Type:   entity.InsuranceTypeVehicle,
		Name:   "Bảo hiểm Vật chất Ô tô",
		Price:  6_800_000,
		Period: "1 năm",
		Benefits: []string{
			"Va chạm, lật đổ, cháy nổ",
			"Mất cắp toàn bộ xe",
			"Cứu hộ 24/7 toàn quốc",
		},
		Coverage:          "Theo giá trị xe",
		RequiredDocuments: vehicleDocuments,
		Exclusions:        []string{"Lái xe không có bằng lái hợp lệ", "Sử dụng rượu bia khi lái xe"},
	},
	{
		ID:     "mandatory-health",
		Type:   entity.InsuranceTypeMandatoryHealth,
		Name:   "Bảo hiểm Y tế Bắt buộc",
		Price:  1_263_600,
		Period: "1 năm",
		Benefits: []string{
			"Chi trả 80% chi phí khám chữa bệnh đúng tuyến",
			"Thuốc trong danh mục bảo hiểm",
		},
		Coverage:          "Theo quy định Bảo hiểm xã hội Việt Nam",
		RequiredDocuments: []string{"CMND/CCCD", "Sổ bảo hiểm xã hội"},
	},
	{
		ID:     "flood-basic",
		Type:   entity.InsuranceTypeNaturalDisaster,
		Name:   "Bảo hiểm Ngập lụt Cơ bản",
		Price:  500_000,
		Period: "1 năm",
		Benefits: []string{
			"Bồi thường thiệt hại nhà ở do ngập lụt đến 200 triệu đồng",
			"Hỗ trợ chỗ ở tạm thời 30 ngày",
		},
		Coverage:          "Tối đa 200.000.000 ₫",
		RequiredDocuments: propertyDocuments,
		Exclusions:        []string{"Nhà xây dựng trái phép", "Thiệt hại do nước rò rỉ từ hệ thống ống nước"},
		Featured:          true,
	},
	{
		ID:     "flood-premium",
		Type:   entity.InsuranceTypeNaturalDisaster,
		Name:   "Bảo hiểm Ngập lụt & Bão Toàn diện",
		Price:  1_500_000,
		Period: "1 năm",
		Benefits: []string{
			"Bồi thường nhà ở và tài sản bên trong đến 1 tỷ đồng",
			"Bão, lốc xoáy, sạt lở đất",
			"Hỗ trợ chỗ ở tạm thời 90 ngày",
		},
		Coverage:          "Tối đa 1.000.000.000 ₫",
		RequiredDocuments: propertyDocuments,
		DetailedBenefits: []entity.BenefitCategory{
			{Category: "Nhà ở", Items: []string{"Kết cấu chính", "Tường rào, cổng"}},
			{Category: "Tài sản", Items: []string{"Đồ nội thất", "Thiết bị điện tử"}},
		},
	},
	{
		ID:     "storm-landslide",
		Type:   entity.InsuranceTypeNaturalDisaster,
		Name:   "Bảo hiểm Bão và Sạt lở",
		Price:  800_000,
		Period: "1 năm",
		Benefits: []string{
			"Thiệt hại do bão, gió giật trên cấp 8",
			"Sạt lở đất, lũ quét",
		},
		Coverage:          "Tối đa 400.000.000 ₫",
		RequiredDocuments: propertyDocuments,
	},
}
