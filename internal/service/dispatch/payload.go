package dispatch

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/evgzln/iiko-transfer/internal/config"
	"github.com/evgzln/iiko-transfer/internal/domain"
	"github.com/evgzln/iiko-transfer/internal/dto"
)

// deliveryTimeLimit is the vendor-side transport threshold in minutes, sent
// with every delivery. It is not a call timeout.
const deliveryTimeLimit = 45

func (s *Service) buildDelivery(ctx context.Context, order domain.Order, items []domain.OrderItem, discountVersion int64) (dto.CreateDeliveryRequest, error) {
	company, err := s.companies.GetByID(ctx, order.CompanyID)
	if err != nil {
		return dto.CreateDeliveryRequest{}, fmt.Errorf("can't load company: %w", err)
	}
	if company == nil {
		return dto.CreateDeliveryRequest{}, ErrCompanyNotFound
	}

	var zone *domain.Region
	if order.DeliveryType != domain.DeliveryTypePickup {
		zone, err = s.companies.CurrentRegion(ctx, order.CompanyID)
		if err != nil {
			return dto.CreateDeliveryRequest{}, fmt.Errorf("can't resolve delivery zone: %w", err)
		}
	}

	var addr *domain.UserAddress
	if order.AddressID != nil {
		addr, err = s.orders.Address(ctx, *order.AddressID)
		if err != nil {
			return dto.CreateDeliveryRequest{}, fmt.Errorf("can't load user address: %w", err)
		}
	}

	var point *dto.DeliveryPoint
	if order.DeliveryType != domain.DeliveryTypePickup {
		if addr == nil {
			return dto.CreateDeliveryRequest{}, ErrAddressNotFound
		}
		point = deliveryPoint(addr, zone)
	}

	discountID := s.resolveDiscount(ctx, order, discountVersion)

	delivery := dto.Delivery{
		Items:            deliveryItems(items),
		DeliveryPoint:    point,
		Customer:         dto.DeliveryCustomer{Name: order.UserName},
		Phone:            "+" + order.UserPhone,
		Payments:         []dto.DeliveryPayment{s.payment(order)},
		OrderServiceType: domain.ServiceTypeFor(order.DeliveryType),
		Comment:          s.comment(order, company, addr),
	}
	if order.DeliveryAt != nil {
		delivery.CompleteBefore = *order.DeliveryAt + ".000"
	}
	delivery.MarketingSourceID = s.ids.MarketingWeb
	if order.IsMobile {
		delivery.MarketingSourceID = s.ids.MarketingMobile
	}
	if discountID != nil {
		delivery.DiscountsInfo = &dto.DiscountsInfo{
			Discounts: []dto.DiscountInfoItem{{DiscountTypeID: *discountID, Type: "RMS"}},
		}
	}

	return dto.CreateDeliveryRequest{
		OrganizationID:  company.SourceID,
		TerminalGroupID: company.TerminalSourceID,
		Order:           delivery,
		Settings:        &dto.DeliverySettings{TransportToFrontTimeout: deliveryTimeLimit},
	}, nil
}

func deliveryItems(items []domain.OrderItem) []dto.DeliveryItem {
	result := make([]dto.DeliveryItem, 0, len(items))
	for _, item := range items {
		var modifiers []dto.DeliveryItemModifier
		for _, mod := range item.Modifiers {
			modifiers = append(modifiers, dto.DeliveryItemModifier{
				ProductID:      mod.SourceID,
				Amount:         1,
				ProductGroupID: mod.GroupSourceID,
			})
		}
		result = append(result, dto.DeliveryItem{
			ProductID: item.ProductSourceID,
			Modifiers: modifiers,
			Type:      "Product",
			Amount:    item.Quantity,
		})
	}
	return result
}

func deliveryPoint(addr *domain.UserAddress, zone *domain.Region) *dto.DeliveryPoint {
	house := addr.HomeNumber
	if house == "" {
		house = "0"
	}
	point := &dto.DeliveryPoint{
		Coordinates: dto.DeliveryPointCoordinates{Latitude: addr.Lat, Longitude: addr.Lng},
		Address: dto.DeliveryPointAddress{
			Street: dto.DeliveryPointStreet{
				ClassifierID: addr.ClassifierID,
				City:         addr.CityName,
			},
			House:     house,
			Building:  addr.Building,
			Flat:      addr.Apartment,
			Entrance:  addr.Entrance,
			Floor:     addr.Floor,
			Doorphone: addr.Intercom,
		},
		Comment: addr.Comment,
	}
	if zone != nil {
		point.Address.RegionID = zone.SourceID
	}
	return point
}

// payment selects the vendor payment type id from the deployment table and
// caps the sum: for cash orders with change above the total the courier
// collects the change amount, otherwise the total rounded down.
func (s *Service) payment(order domain.Order) dto.DeliveryPayment {
	sum := math.Floor(order.FinalSum)
	if order.PayType == domain.PayTypeCash && order.Change != nil && *order.Change > order.FinalSum {
		sum = float64(int64(*order.Change))
	}
	return dto.DeliveryPayment{
		PaymentTypeKind:       order.PayType.IikoKind(),
		Sum:                   sum,
		PaymentTypeID:         s.ids.Payments[order.PayType.Name()],
		IsProcessedExternally: order.PayType == domain.PayTypeInet,
	}
}

// addressString flattens a user address into the free-text form the vendor
// side displays: base address plus only the parts that are present.
func addressString(addr *domain.UserAddress) string {
	if addr == nil {
		return ""
	}
	result := addr.Address
	if addr.HomeNumber != "" {
		result += " дом " + addr.HomeNumber
	}
	if addr.Building != "" {
		result += " стр. " + addr.Building
	}
	if addr.Entrance != "" {
		result += " под. " + addr.Entrance
	}
	if addr.Floor != "" {
		result += " этаж " + addr.Floor
	}
	if addr.Apartment != "" {
		result += " кв. " + addr.Apartment
	}
	if addr.Comment != "" {
		result += " коммент.: " + addr.Comment
	}
	return result
}

// comment builds the courier-visible free-text note. The kz deployment and
// one legacy company prepend address context; a birthday marker goes last.
func (s *Service) comment(order domain.Order, company *domain.Company, addr *domain.UserAddress) string {
	var result string
	if s.cfg.AppTarget == config.TargetKZ {
		result += addressString(addr) + " // "
	}
	if company.Name == "Зеленоград_1 Зел" && addr != nil {
		result += addr.Address + " // "
	}
	if order.Comment != nil {
		result += *order.Comment
	}
	if addr != nil && addr.Comment != "" {
		result += "//" + addr.Comment
	}
	if order.Birthday {
		result += "/ДР"
	}
	return result
}

// resolveDiscount picks the region discount for the order's delivery and
// birthday combination by substring rules over the freeform discount names.
// A miss is not an error: the order goes out without a discount.
func (s *Service) resolveDiscount(ctx context.Context, order domain.Order, discountVersion int64) *string {
	filter := domain.DiscountFilter{
		MinVersion: discountVersion,
		Include:    []string{"Ёби"},
	}
	if order.DeliveryType == domain.DeliveryTypePickup {
		filter.Include = append(filter.Include, "самовывоз")
		if order.Birthday {
			filter.Include = append(filter.Include, "др")
		} else {
			filter.Exclude = append(filter.Exclude, "др")
		}
	} else {
		filter.Include = append(filter.Include, "доставка")
		if order.Birthday {
			filter.Include = append(filter.Include, "д.р.")
		} else {
			filter.Exclude = append(filter.Exclude, "др")
		}
	}

	sourceID, err := s.discounts.FindSourceID(ctx, filter)
	if err != nil {
		zap.L().Warn("discount lookup failed", zap.Int64("order_id", order.ID), zap.Error(err))
		return nil
	}
	if sourceID == nil {
		zap.L().Warn("not able to fetch discount for order", zap.Int64("order_id", order.ID))
	}
	return sourceID
}
