package domain

// Seed documents persisted the first time a collection key is read and found
// absent. Each function returns a fresh value so callers can mutate freely.

func DefaultProducts() []Product {
	return []Product{
		{ID: 1, Name: "Delta MS300 Series Model: VFD17AMS43ANSAA", SKU: "VFD17AMS43ANSAA", Price: 15850, Category: "ms300", InStock: true, StockQuantity: 12, Brand: "Delta Electronics", Series: "MS300", Warranty: "1 ปี", Description: "อินเวอร์เตอร์ Delta MS300 Series สำหรับควบคุมความเร็วมอเตอร์ไฟฟ้า 3 เฟส 380V"},
		{ID: 2, Name: "Delta MS300 Series Model: VFD4A8MS21ANSAA", SKU: "VFD4A8MS21ANSAA", Price: 5500, Category: "ms300", InStock: true, StockQuantity: 25, Brand: "Delta Electronics", Series: "MS300", Warranty: "1 ปี", Description: "อินเวอร์เตอร์ Delta MS300 Series สำหรับมอเตอร์ 1 เฟส 220V"},
		{ID: 3, Name: "Delta MS300 Series Model: VFD5A5MS43ANSAA", SKU: "VFD5A5MS43ANSAA", Price: 9050, Category: "ms300", InStock: true, StockQuantity: 8, Brand: "Delta Electronics", Series: "MS300", Warranty: "1 ปี"},
		{ID: 4, Name: "Delta MS300 Series Model: VFD9A0MS43ANSAA", SKU: "VFD9A0MS43ANSAA", Price: 10600, Category: "ms300", InStock: true, StockQuantity: 6, Brand: "Delta Electronics", Series: "MS300", Warranty: "1 ปี"},
		{ID: 5, Name: "Delta MS300 Series Model: VFD11AMS21ANSAA", SKU: "VFD11AMS21ANSAA", Price: 7350, OriginalPrice: 8000, Category: "ms300", InStock: true, StockQuantity: 15, Brand: "Delta Electronics", Series: "MS300", Warranty: "1 ปี", Featured: true},
		{ID: 6, Name: "Delta MS300 Series Model: VFD1A6MS11ANSAA", SKU: "VFD1A6MS11ANSAA", Price: 7550, Category: "ms300", InStock: true, StockQuantity: 10, Brand: "Delta Electronics", Series: "MS300", Warranty: "1 ปี"},
		{ID: 7, Name: "Delta MS300 Series Model: VFD1A6MS23ANSAA", SKU: "VFD1A6MS23ANSAA", Price: 5200, Category: "ms300", InStock: true, StockQuantity: 18, Brand: "Delta Electronics", Series: "MS300", Warranty: "1 ปี"},
		{ID: 8, Name: "Delta MS300 Series Model: VFD2A8MS23ANSAA", SKU: "VFD2A8MS23ANSAA", Price: 6100, Category: "ms300", InStock: true, StockQuantity: 14, Brand: "Delta Electronics", Series: "MS300", Warranty: "1 ปี"},
		{ID: 9, Name: "Delta MS300 Series Model: VFD25AMS43ANSAA 15HP", SKU: "VFD25AMS43ANSAA", Price: 18000, Category: "ms300", InStock: true, StockQuantity: 3, Brand: "Delta Electronics", Series: "MS300", Warranty: "1 ปี", Featured: true},
		{ID: 10, Name: "Delta HMI DOP-110WS-HMI Touch Screen 10.1\"", SKU: "DOP-110WS", Price: 22400, Category: "hmi", InStock: true, StockQuantity: 5, Brand: "Delta Electronics", Series: "DOP-100", Warranty: "1 ปี", Featured: true, Description: "จอสัมผัส HMI ขนาด 10.1 นิ้ว ความละเอียดสูง สำหรับควบคุมเครื่องจักร"},
		{ID: 11, Name: "Delta HMI DOP-103WQ-HMI Touch Screen 4.3\"", SKU: "DOP-103WQ", Price: 7650, Category: "hmi", InStock: true, StockQuantity: 20, Brand: "Delta Electronics", Series: "DOP-100", Warranty: "1 ปี"},
		{ID: 12, Name: "Delta HMI DOP-107BV Touch Screen 7\"", SKU: "DOP-107BV", Price: 12500, Category: "hmi", InStock: true, StockQuantity: 8, Brand: "Delta Electronics", Series: "DOP-100", Warranty: "1 ปี", Featured: true},
		{ID: 13, Name: "Servo Motor ECMA-C20604RS", SKU: "ECMA-C20604RS", Price: 8500, Category: "servo", InStock: true, StockQuantity: 10, Brand: "Delta Electronics", Series: "ECMA", Warranty: "1 ปี", Description: "เซอร์โวมอเตอร์ Delta 400W พร้อมเอนโค้ดเดอร์ความละเอียดสูง"},
		{ID: 14, Name: "Servo Drive ASD-A2-0121-L 100W 220V", SKU: "ASD-A2-0121-L", Price: 11000, Category: "servo", InStock: true, StockQuantity: 7, Brand: "Delta Electronics", Series: "ASD-A2", Warranty: "1 ปี", Featured: true},
		{ID: 15, Name: "DRL-24V120W1EN Delta Power Supply", SKU: "DRL-24V120W1EN", Price: 1120, Category: "power-supply", InStock: true, StockQuantity: 50, Brand: "Delta Electronics", Series: "DRL", Warranty: "1 ปี"},
		{ID: 16, Name: "DVPPS02 Delta Power Supply", SKU: "DVPPS02", Price: 1000, Category: "power-supply", InStock: true, StockQuantity: 35, Brand: "Delta Electronics", Series: "DVP", Warranty: "1 ปี"},
		{ID: 17, Name: "Delta Temperature Controller DTC1000L", SKU: "DTC1000L", Price: 1670, OriginalPrice: 2000, Category: "dtk", InStock: true, StockQuantity: 30, Brand: "Delta Electronics", Series: "DTC", Warranty: "1 ปี", Featured: true},
		{ID: 18, Name: "Delta Temperature Controller DTK9696C12", SKU: "DTK9696C12", Price: 2700, Category: "dtk", InStock: true, StockQuantity: 15, Brand: "Delta Electronics", Series: "DTK", Warranty: "1 ปี"},
		{ID: 19, Name: "Delta PLC DVP08SN11T Extension NPN", SKU: "DVP08SN11T", Price: 1850, Category: "plc", InStock: true, StockQuantity: 22, Brand: "Delta Electronics", Series: "DVP", Warranty: "1 ปี"},
		{ID: 20, Name: "Delta PLC DVP16I AC Input Module", SKU: "DVP16I", Price: 3200, Category: "plc", InStock: true, StockQuantity: 12, Brand: "Delta Electronics", Series: "DVP", Warranty: "1 ปี"},
		{ID: 21, Name: "Delta Inverter VFD-EL Series: VFD007EL21A", SKU: "VFD007EL21A", Price: 5350, Category: "vfd-el", InStock: true, StockQuantity: 18, Brand: "Delta Electronics", Series: "VFD-EL", Warranty: "1 ปี"},
		{ID: 22, Name: "Delta Inverter VFD-E Series: VFD015E43A", SKU: "VFD015E43A", Price: 9500, Category: "vfd-e", InStock: true, StockQuantity: 6, Brand: "Delta Electronics", Series: "VFD-E", Warranty: "1 ปี", Featured: true},
		{ID: 23, Name: "Delta Inverter VFD-E Series: VFD007E43A", SKU: "VFD007E43A", Price: 6800, Category: "vfd-e", InStock: true, StockQuantity: 9, Brand: "Delta Electronics", Series: "VFD-E", Warranty: "1 ปี"},
		{ID: 24, Name: "Delta ME300 Series: VFD2A7ME21ANSAA", SKU: "VFD2A7ME21ANSAA", Price: 4500, Category: "me300", InStock: true, StockQuantity: 20, Brand: "Delta Electronics", Series: "ME300", Warranty: "1 ปี"},
	}
}

func DefaultAbout() AboutData {
	return AboutData{
		CompanyName:      "Intech Delta System",
		CompanyNameTh:    "บริษัทอินเทค เดลต้า ซิสเทม จำกัด",
		FoundedYear:      "พ.ศ. 2547",
		Description:      "บริษัทอินเทค เดลต้า ซิสเทม จำกัด ก่อตั้งขึ้นเมื่อปี พ.ศ. 2547 โดยทีมงานวิศวกรที่มีความรู้และเชี่ยวชาญระบบควบคุมเครื่องจักร มากว่า 20 ปี ทั้งด้านการติดตั้งปรับปรุง และการให้บริการระบบเครื่องจักรกลอัตโนมัติ บริษัทได้ทำการพัฒนา ในด้านเทคโนโลยี การฝึกอบรมอย่างต่อเนื่อง และพร้อมก้าวสู่ปีที่ 20 อย่างมั่นคง",
		DescriptionExtra: "บริษัทจำหน่ายสินค้าอุตสาหกรรม อินเวอร์เตอร์ เซอร์โวมอเตอร์ ทัชสกรีน สำหรับงานออกแบบเครื่องจักร และเพื่อใช้ในงานปรับปรุงระบบไฟฟ้าควบคุมเครื่องจักรเดิม งานระบบ AUTOMATION SYSTEM INTEGRATOR โดยมุ่งเน้นเพื่อให้สะดวก ในการทำงานผลิต และเพิ่มประสิทธิภาพการทำงานของเครื่องจักร",
		DeltaGroupInfo:   "DELTA GROUP เป็นบริษัทชั้นนำ ที่มีการผลิต Switching Power Supply และ DC Brushless Fan มากเป็นอันดับหนึ่งของโลก เดลต้าได้ทำการผลิตสินค้าสำหรับงานเครื่องจักรอุตสาหกรรม โดยให้ความสำคัญทางด้านงานวิจัยและพัฒนาเป็นอย่างมาก",
		TeamMembers: []TeamMember{
			{Name: "คุณ วินัย กรตระกูลกาญจน์", Role: "CEO & Co-Founder"},
			{Name: "คุณ สุเมธ นิลอ่างทอง", Role: "ผู้จัดการ"},
		},
		Highlights: []Highlight{
			{Label: "นำเข้า", Desc: "นำเข้าและจัดจำหน่ายสินค้าอุตสาหกรรม อินเวอร์เตอร์ เซอร์โวมอเตอร์ ทัชสกรีน สำหรับงานออกแบบเครื่องจักร"},
			{Label: "ตัวแทน", Desc: "เป็นตัวแทนจำหน่ายผลิตภัณฑ์ Delta Electronics อย่างเป็นทางการ"},
			{Label: "เชี่ยวชาญ", Desc: "เรามีทีมวิศวกรผู้เชี่ยวชาญ และประสบการณ์ทำงานมากว่า 20 ปี"},
		},
	}
}

func DefaultServices() []ServiceItem {
	return []ServiceItem{
		{
			ID:       "automation",
			Title:    "Automation System Integrator",
			Desc:     "ออกแบบและติดตั้งระบบ Automation สำหรับเครื่องจักรอุตสาหกรรม โดยทีมวิศวกรผู้เชี่ยวชาญ",
			Features: []string{"ออกแบบระบบควบคุมเครื่องจักร", "วางระบบ PLC Programming", "ติดตั้ง HMI Touch Screen Interface", "ทดสอบและ Commissioning"},
		},
		{
			ID:       "control-system",
			Title:    "ออกแบบระบบควบคุม",
			Desc:     "ออกแบบและประกอบตู้ควบคุม ตู้ไฟฟ้า จัดทำโปรแกรม PLC, HMI สำหรับระบบควบคุมเครื่องจักรอุตสาหกรรมทุกประเภท",
			Features: []string{"ออกแบบระบบไฟฟ้าควบคุม", "ประกอบตู้ MCC / Control Panel", "เขียนโปรแกรม PLC & HMI", "ทดสอบระบบก่อนส่งมอบ"},
		},
		{
			ID:       "scada",
			Title:    "SCADA Monitoring System",
			Desc:     "จัดทำระบบตรวจสอบ Monitoring Scada งานระบบอุตสาหกรรม เพื่อติดตามและควบคุมกระบวนการผลิตแบบ Real-time",
			Features: []string{"ติดตั้งระบบ SCADA/HMI", "Real-time Monitoring & Control", "Data Logging & Reporting", "Remote Access & Alarm Management"},
		},
		{
			ID:       "maintenance",
			Title:    "ซ่อมบำรุงเครื่องจักร",
			Desc:     "บริการซ่อมบำรุงเครื่องจักร งานเคลื่อนย้ายเครื่องจักร พร้อมทดสอบ ปรับปรุงระบบไฟฟ้าควบคุมเครื่องจักรเดิม",
			Features: []string{"ซ่อมบำรุงระบบ Inverter / Servo", "เคลื่อนย้ายเครื่องจักร", "ปรับปรุงระบบไฟฟ้าเดิม", "ตรวจสอบและทดสอบระบบ"},
		},
		{
			ID:       "inverter",
			Title:    "ติดตั้งระบบ Inverter",
			Desc:     "บริการติดตั้งและตั้งค่า Inverter สำหรับควบคุมความเร็วมอเตอร์ไฟฟ้า ช่วยประหยัดพลังงาน",
			Features: []string{"เลือก Inverter ให้เหมาะสมกับงาน", "ติดตั้งและตั้งค่า Parameter", "ทดสอบและปรับจูน", "อบรมการใช้งานเบื้องต้น"},
		},
		{
			ID:       "consulting",
			Title:    "ให้คำปรึกษาด้าน Automation",
			Desc:     "ทีมวิศวกรผู้เชี่ยวชาญพร้อมให้คำปรึกษาเกี่ยวกับงาน Automation ทุกรูปแบบ",
			Features: []string{"วิเคราะห์ความต้องการ", "ออกแบบ Solution", "เสนอราคาและแผนงาน", "ติดตามผลและดูแลหลังการขาย"},
		},
	}
}

func DefaultSettings() SiteSettings {
	return SiteSettings{
		Phone:           "0-2952-5120",
		Phone2:          "086-3057990",
		Email:           "info@intech.co.th",
		Address:         "64,66 ซอยงามวงศ์วาน 3 ถนนงามวงศ์วาน ตำบลบางกระสอ อำเภอเมือง จังหวัดนนทบุรี 11000",
		AddressShort:    "นนทบุรี 11000",
		WorkingHours:    "จันทร์ - เสาร์ : 8:00 - 17:00",
		LineURL:         "https://page.line.me/035qyhrg",
		LineID:          "@035qyhrg",
		FacebookURL:     "https://www.facebook.com/IntechDeltaAutomation",
		MessengerURL:    "https://m.me/IntechDeltaAutomation",
		YoutubeURL:      "https://www.youtube.com",
		GoogleMapsEmbed: "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3874.567!2d100.5100!3d13.8600!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x0%3A0x0!2zMTPCsDUxJzM2LjAiTiAxMDDCsDMwJzM2LjAiRQ!5e0!3m2!1sth!2sth!4v1",
		HeroTitle:       "Intech Delta System",
		HeroSubtitle:    "Authorized Dealer - Delta Electronics",
		HeroDescription: "ตัวแทนจำหน่ายผลิตภัณฑ์ Delta Electronics อย่างเป็นทางการ จำหน่ายสินค้าอุตสาหกรรม Inverter, Servo Motor, HMI, PLC พร้อมบริการ Automation System Integrator",
	}
}
