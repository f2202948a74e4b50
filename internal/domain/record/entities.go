package record

import (
	"time"
)

type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

type CustomerStatus string

const (
	CustomerLead     CustomerStatus = "lead"
	CustomerProspect CustomerStatus = "prospect"
	CustomerActive   CustomerStatus = "customer"
	CustomerInactive CustomerStatus = "inactive"
)

type AssetCategory string

const (
	AssetEquipment AssetCategory = "equipment"
	AssetFurniture AssetCategory = "furniture"
	AssetVehicle   AssetCategory = "vehicle"
	AssetSoftware  AssetCategory = "software"
	AssetOther     AssetCategory = "other"
)

type AssetStatus string

const (
	AssetActive      AssetStatus = "active"
	AssetMaintenance AssetStatus = "maintenance"
	AssetRetired     AssetStatus = "retired"
	AssetDisposed    AssetStatus = "disposed"
)

type Employee struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"-"`
	Name       string    `gorm:"size:100" json:"name"`
	Email      string    `gorm:"size:254" json:"email"`
	Position   string    `gorm:"size:100" json:"position"`
	Department string    `gorm:"size:100" json:"department"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Employee) TableName() string { return "employees" }

type Transaction struct {
	ID          uint64          `gorm:"primaryKey;column:id" json:"-"`
	Date        time.Time       `gorm:"type:date" json:"date"`
	Description string          `gorm:"size:200" json:"description"`
	Amount      float64         `gorm:"type:decimal(10,2)" json:"amount"`
	Type        TransactionType `gorm:"size:10" json:"type"`
	Category    string          `gorm:"size:100" json:"category"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Transaction) TableName() string { return "transactions" }

type Project struct {
	ID          uint64        `gorm:"primaryKey;column:id" json:"-"`
	Name        string        `gorm:"size:100" json:"name"`
	Description string        `gorm:"type:text" json:"description"`
	Client      string        `gorm:"size:100" json:"client"`
	Status      ProjectStatus `gorm:"size:20" json:"status"`
	StartDate   *time.Time    `gorm:"type:date" json:"start_date"`
	EndDate     *time.Time    `gorm:"type:date" json:"end_date"`
	Progress    int           `gorm:"default:0" json:"progress"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
}

func (Project) TableName() string { return "projects" }

type Customer struct {
	ID        uint64         `gorm:"primaryKey;column:id" json:"-"`
	Name      string         `gorm:"size:100" json:"name"`
	Email     string         `gorm:"size:254" json:"email"`
	Phone     string         `gorm:"size:20" json:"phone"`
	Company   string         `gorm:"size:100" json:"company"`
	Status    CustomerStatus `gorm:"size:20" json:"status"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (Customer) TableName() string { return "customers" }

type Asset struct {
	ID          uint64        `gorm:"primaryKey;column:id" json:"-"`
	Name        string        `gorm:"size:100" json:"name"`
	Description string        `gorm:"type:text" json:"description"`
	Category    AssetCategory `gorm:"size:20" json:"category"`
	Value       float64       `gorm:"type:decimal(10,2)" json:"value"`
	Status      AssetStatus   `gorm:"size:20" json:"status"`
	Location    string        `gorm:"size:100" json:"location"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
}

func (Asset) TableName() string { return "assets" }
