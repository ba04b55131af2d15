package dto

import "encoding/json"

// Requests and responses of the iiko cloud transport API. Field names follow
// the vendor wire format.

type AccessTokenRequest struct {
	APILogin string `json:"apiLogin"`
}

type AccessTokenResponse struct {
	CorrelationID string `json:"correlationId"`
	Token         string `json:"token"`
}

type OrganizationsRequest struct {
	ReturnAdditionalInfo bool `json:"returnAdditionalInfo"`
}

type Organization struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
}

type OrganizationsResponse struct {
	CorrelationID string         `json:"correlationId"`
	Organizations []Organization `json:"organizations"`
}

type OrganizationIDsRequest struct {
	OrganizationIDs []string `json:"organizationIds"`
}

type TerminalGroup struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organizationId"`
	Name           string `json:"name"`
}

type TerminalGroupsResponse struct {
	CorrelationID  string `json:"correlationId"`
	TerminalGroups []struct {
		OrganizationID string          `json:"organizationId"`
		Items          []TerminalGroup `json:"items"`
	} `json:"terminalGroups"`
}

type City struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsDeleted bool   `json:"isDeleted"`
}

type CitiesResponse struct {
	CorrelationID string `json:"correlationId"`
	Cities        []struct {
		OrganizationID string `json:"organizationId"`
		Items          []City `json:"items"`
	} `json:"cities"`
}

type StreetsRequest struct {
	OrganizationID string `json:"organizationId"`
	CityID         string `json:"cityId"`
}

type Street struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ClassifierID string `json:"classifierId,omitempty"`
	IsDeleted    bool   `json:"isDeleted"`
}

type StreetsResponse struct {
	CorrelationID string   `json:"correlationId"`
	Streets       []Street `json:"streets"`
}

type NomenclatureRequest struct {
	OrganizationID string `json:"organizationId"`
}

type Product struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	ParentGroup      string  `json:"parentGroup,omitempty"`
	IsDeleted        bool    `json:"isDeleted"`
	Price            float64 `json:"price,omitempty"`
	GroupID          string  `json:"groupId,omitempty"`
	ModifierGroupIDs []string `json:"modifierGroupIds,omitempty"`
}

type ProductGroup struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	IsGroupModifier bool   `json:"isGroupModifier"`
}

type NomenclatureResponse struct {
	CorrelationID string         `json:"correlationId"`
	Products      []Product      `json:"products"`
	Groups        []ProductGroup `json:"groups"`
	Revision      int64          `json:"revision"`
}

type StopListItem struct {
	ProductID string  `json:"productId"`
	Balance   float64 `json:"balance"`
}

type TerminalGroupStopList struct {
	TerminalGroupID string         `json:"terminalGroupId"`
	Items           []StopListItem `json:"items"`
}

type StopListsResponse struct {
	CorrelationID    string `json:"correlationId"`
	TerminalGroupStopLists []struct {
		OrganizationID string                  `json:"organizationId"`
		Items          []TerminalGroupStopList `json:"items"`
	} `json:"terminalGroupStopLists"`
}

type PaymentType struct {
	ID                    string   `json:"id"`
	Code                  string   `json:"code"`
	Name                  string   `json:"name"`
	Combinable            bool     `json:"combinable"`
	IsDeleted             bool     `json:"isDeleted"`
	PaymentProcessingType string   `json:"paymentProcessingType"`
	PaymentTypeKind       string   `json:"paymentTypeKind"`
	OrganizationIDs       []string `json:"applicableOrganizations,omitempty"`
}

type PaymentTypesResponse struct {
	CorrelationID string        `json:"correlationId"`
	PaymentTypes  []PaymentType `json:"paymentTypes"`
}

type Region struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsDeleted bool   `json:"isDeleted"`
}

type RegionsResponse struct {
	CorrelationID string `json:"correlationId"`
	Regions       []struct {
		OrganizationID string   `json:"organizationId"`
		Items          []Region `json:"items"`
	} `json:"regions"`
}

type Discount struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Percent float64 `json:"percent,omitempty"`
}

type DiscountsResponse struct {
	CorrelationID string `json:"correlationId"`
	Discounts     []struct {
		OrganizationID string     `json:"organizationId"`
		Items          []Discount `json:"items"`
	} `json:"discounts"`
}

type DeliveryItemModifier struct {
	ProductID      string  `json:"productId"`
	Amount         float64 `json:"amount"`
	ProductGroupID string  `json:"productGroupId,omitempty"`
}

type DeliveryItem struct {
	ProductID string                 `json:"productId"`
	Modifiers []DeliveryItemModifier `json:"modifiers,omitempty"`
	Type      string                 `json:"type"`
	Amount    float64                `json:"amount"`
	Comment   string                 `json:"comment,omitempty"`
}

type DeliveryPointCoordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type DeliveryPointStreet struct {
	ClassifierID string `json:"classifierId,omitempty"`
	ID           string `json:"id,omitempty"`
	Name         string `json:"name,omitempty"`
	City         string `json:"city,omitempty"`
}

type DeliveryPointAddress struct {
	Street    DeliveryPointStreet `json:"street"`
	House     string              `json:"house"`
	Building  string              `json:"building,omitempty"`
	Flat      string              `json:"flat,omitempty"`
	Entrance  string              `json:"entrance,omitempty"`
	Floor     string              `json:"floor,omitempty"`
	Doorphone string              `json:"doorphone,omitempty"`
	RegionID  string              `json:"regionId,omitempty"`
}

type DeliveryPoint struct {
	Coordinates DeliveryPointCoordinates `json:"coordinates"`
	Address     DeliveryPointAddress     `json:"address"`
	Comment     string                   `json:"comment,omitempty"`
}

type DeliveryCustomer struct {
	Name                        string `json:"name,omitempty"`
	Surname                     string `json:"surname,omitempty"`
	Comment                     string `json:"comment,omitempty"`
	ShouldReceivePromoActions   bool   `json:"shouldReceiveOrderStatusNotifications"`
	Type                        string `json:"type,omitempty"`
}

type DeliveryPayment struct {
	PaymentTypeKind       string  `json:"paymentTypeKind"`
	Sum                   float64 `json:"sum"`
	PaymentTypeID         string  `json:"paymentTypeId"`
	IsProcessedExternally bool    `json:"isProcessedExternally"`
	IsFiscalizedExternally bool   `json:"isFiscalizedExternally"`
}

type DiscountsInfo struct {
	Discounts []DiscountInfoItem `json:"discounts"`
}

type DiscountInfoItem struct {
	DiscountTypeID string `json:"discountTypeId"`
	Type           string `json:"type"`
}

type Delivery struct {
	Items             []DeliveryItem    `json:"items"`
	CompleteBefore    string            `json:"completeBefore,omitempty"`
	DeliveryPoint     *DeliveryPoint    `json:"deliveryPoint,omitempty"`
	Customer          DeliveryCustomer  `json:"customer"`
	Phone             string            `json:"phone"`
	Payments          []DeliveryPayment `json:"payments"`
	OrderServiceType  string            `json:"orderServiceType"`
	Comment           string            `json:"comment,omitempty"`
	MarketingSourceID string            `json:"marketingSourceId,omitempty"`
	DiscountsInfo     *DiscountsInfo    `json:"discountsInfo,omitempty"`
}

// DeliverySettings carries the vendor-side transport threshold, minutes. It
// is a payload field, not a call timeout.
type DeliverySettings struct {
	TransportToFrontTimeout int `json:"transportToFrontTimeout"`
}

type CreateDeliveryRequest struct {
	OrganizationID  string            `json:"organizationId"`
	TerminalGroupID string            `json:"terminalGroupId"`
	Order           Delivery          `json:"order"`
	Settings        *DeliverySettings `json:"createOrderSettings,omitempty"`
}

type ErrorInfo struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

type OrderInfo struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organizationId"`
	Timestamp      int64           `json:"timestamp"`
	CreationStatus string          `json:"creationStatus"`
	ErrorInfo      *ErrorInfo      `json:"errorInfo,omitempty"`
	Order          json.RawMessage `json:"order,omitempty"`
}

type CreateDeliveryResponse struct {
	CorrelationID string    `json:"correlationId"`
	OrderInfo     OrderInfo `json:"orderInfo"`
}

type OrdersByIDsRequest struct {
	OrganizationIDs []string `json:"organizationIds"`
	OrderIDs        []string `json:"orderIds"`
}

// VendorOrder is the nested order body of a status response.
type VendorOrder struct {
	Status         string `json:"status,omitempty"`
	Number         *string `json:"number,omitempty"`
	CompleteBefore *string `json:"completeBefore,omitempty"`
}

type VendorOrderInfo struct {
	ID               string       `json:"id"`
	OrganizationID   string       `json:"organizationId"`
	CreationStatus   string       `json:"creationStatus"`
	ErrorInfo        *ErrorInfo   `json:"errorInfo,omitempty"`
	ErrorDescription string       `json:"errorDescription,omitempty"`
	Order            *VendorOrder `json:"order,omitempty"`
}

type OrdersByIDsResponse struct {
	CorrelationID string            `json:"correlationId"`
	Orders        []VendorOrderInfo `json:"orders"`
}
