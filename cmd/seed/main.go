package main

import (
	"context"
	"log"

	"expman-backend/internal/adapter/repository/gormrepo"
	"expman-backend/internal/config"
	domain "expman-backend/internal/domain/record"
	"expman-backend/internal/infrastructure/db"
)

type seedEmployee struct {
	Name, Email, Position, Department string
}

var employees = []seedEmployee{
	{"Nguyễn Văn An", "an.nguyen@company.com", "Senior Developer", "IT"},
	{"Trần Thị Bình", "binh.tran@company.com", "HR Manager", "HR"},
	{"Lê Văn Cường", "cuong.le@company.com", "Project Manager", "IT"},
	{"Phạm Thị Dung", "dung.pham@company.com", "Accountant", "Finance"},
	{"Hoàng Văn Em", "em.hoang@company.com", "Marketing Lead", "Marketing"},
	{"Ngô Thị Phương", "phuong.ngo@company.com", "Sales Executive", "Sales"},
	{"Đặng Văn Giang", "giang.dang@company.com", "Junior Developer", "IT"},
	{"Vũ Thị Hương", "huong.vu@company.com", "HR Specialist", "HR"},
	{"Bùi Văn Inh", "inh.bui@company.com", "System Admin", "IT"},
	{"Đỗ Thị Kim", "kim.do@company.com", "Finance Manager", "Finance"},
	{"Hồ Văn Linh", "linh.ho@company.com", "Sales Manager", "Sales"},
	{"Mai Thị Minh", "minh.mai@company.com", "Marketing Specialist", "Marketing"},
	{"Phan Văn Nam", "nam.phan@company.com", "Senior Developer", "IT"},
	{"Trương Thị Oanh", "oanh.truong@company.com", "HR Director", "HR"},
	{"Lý Văn Phát", "phat.ly@company.com", "Technical Lead", "IT"},
	{"Nguyễn Thị Quỳnh", "quynh.nguyen@company.com", "Accountant", "Finance"},
	{"Trần Văn Rồng", "rong.tran@company.com", "Sales Executive", "Sales"},
	{"Lê Thị Sen", "sen.le@company.com", "Marketing Manager", "Marketing"},
	{"Phạm Văn Tâm", "tam.pham@company.com", "DevOps Engineer", "IT"},
	{"Hoàng Thị Uyên", "uyen.hoang@company.com", "HR Specialist", "HR"},
	{"Ngô Văn Việt", "viet.ngo@company.com", "Full Stack Developer", "IT"},
	{"Đặng Thị Xuân", "xuan.dang@company.com", "Finance Analyst", "Finance"},
	{"Vũ Văn Yến", "yen.vu@company.com", "Sales Director", "Sales"},
	{"Bùi Thị Zung", "zung.bui@company.com", "Marketing Executive", "Marketing"},
	{"Đỗ Văn Anh", "anh.do@company.com", "QA Engineer", "IT"},
	{"Hồ Thị Bảo", "bao.ho@company.com", "HR Manager", "HR"},
	{"Mai Văn Công", "cong.mai@company.com", "Backend Developer", "IT"},
	{"Phan Thị Diệu", "dieu.phan@company.com", "Frontend Developer", "IT"},
	{"Trương Văn Đức", "duc.truong@company.com", "UI/UX Designer", "IT"},
	{"Lý Thị Nga", "nga.ly@company.com", "Product Manager", "IT"},
}

// Wipes and re-inserts the sample employee data set.
func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	gdb, err := db.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}

	if err := gdb.Where("1 = 1").Delete(&domain.Employee{}).Error; err != nil {
		log.Fatal(err)
	}
	log.Println("deleted existing employees")

	repo := gormrepo.NewRepo[domain.Employee](gdb)
	ctx := context.Background()
	for _, e := range employees {
		rec := &domain.Employee{Name: e.Name, Email: e.Email, Position: e.Position, Department: e.Department}
		if err := repo.Create(ctx, rec); err != nil {
			log.Fatalf("seed %s: %v", e.Name, err)
		}
	}
	log.Printf("created %d employees", len(employees))
}
