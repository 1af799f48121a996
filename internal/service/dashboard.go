package service

import (
	"sort"
	"strconv"
	"time"

	"github.com/naodalemu/SSRS-Admin/internal/api"
	"github.com/naodalemu/SSRS-Admin/internal/models"

	"github.com/sirupsen/logrus"
)

// DashboardStats - сводка главного экрана
type DashboardStats struct {
	TotalOrders      int
	CompletedOrders  int
	CanceledOrders   int
	ReadyOrders      int
	ProcessingOrders int
	PendingOrders    int

	RecentOrders []models.Order

	FreeTables     int
	OccupiedTables int

	// Выручка завершенных заказов по дням недели, понедельник первый
	WeeklySales [7]float64
}

// DashboardService собирает сводку по заказам и столикам
type DashboardService struct {
	api    *api.Client
	logger *logrus.Logger
}

func NewDashboardService(apiClient *api.Client) *DashboardService {
	return &DashboardService{
		api:    apiClient,
		logger: logrus.New(),
	}
}

// Load запрашивает заказы и столики и считает сводку
func (s *DashboardService) Load() (*DashboardStats, error) {
	orders, err := s.api.GetOrders()
	if err != nil {
		s.logger.WithError(err).Error("Failed to fetch orders")
		return nil, err
	}

	tables, err := s.api.GetTables()
	if err != nil {
		s.logger.WithError(err).Error("Failed to fetch tables")
		return nil, err
	}

	return BuildDashboardStats(orders, tables), nil
}

// BuildDashboardStats считает сводку по уже загруженным данным
func BuildDashboardStats(orders []models.Order, tables []models.Table) *DashboardStats {
	stats := &DashboardStats{TotalOrders: len(orders)}

	for i := range orders {
		switch orders[i].OrderStatus {
		case models.OrderCompleted:
			stats.CompletedOrders++
		case models.OrderCanceled:
			stats.CanceledOrders++
		case models.OrderReady:
			stats.ReadyOrders++
		case models.OrderProcessing:
			stats.ProcessingOrders++
		case models.OrderPending:
			stats.PendingOrders++
		}
	}

	// Три последних заказа по времени оформления
	recent := make([]models.Order, len(orders))
	copy(recent, orders)
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].OrderDateTime > recent[j].OrderDateTime
	})
	if len(recent) > 3 {
		recent = recent[:3]
	}
	stats.RecentOrders = recent

	for i := range tables {
		if tables[i].IsOccupied() {
			stats.OccupiedTables++
		} else {
			stats.FreeTables++
		}
	}

	// Выручка завершенных заказов раскладывается по дням недели
	for i := range orders {
		if orders[i].OrderStatus != models.OrderCompleted {
			continue
		}
		placedAt, err := time.Parse(time.RFC3339, orders[i].OrderDateTime)
		if err != nil {
			// Вторая попытка: сервер иногда отдает время без зоны
			placedAt, err = time.Parse("2006-01-02 15:04:05", orders[i].OrderDateTime)
			if err != nil {
				continue
			}
		}
		price, err := strconv.ParseFloat(orders[i].TotalPrice, 64)
		if err != nil {
			continue
		}

		weekday := int(placedAt.Weekday()) - 1
		if placedAt.Weekday() == time.Sunday {
			weekday = 6
		}
		stats.WeeklySales[weekday] += price
	}

	return stats
}
