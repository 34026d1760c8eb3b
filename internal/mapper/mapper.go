// Package mapper converts between domain models and the generated API models.
package mapper

import (
	"jpashop/internal/entities"
	"jpashop/internal/oapi"
)

// optString maps an empty string to an omitted field.
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// FromDTOAddress builds an entities.Address; nil maps to the zero address.
func FromDTOAddress(src *oapi.Address) entities.Address {
	if src == nil {
		return entities.Address{}
	}
	return entities.Address{City: src.City, Street: src.Street, Zipcode: src.Zipcode}
}

// ToDTOAddress maps entities.Address to transport model.
func ToDTOAddress(a entities.Address) oapi.Address {
	return oapi.Address{City: a.City, Street: a.Street, Zipcode: a.Zipcode}
}

// FromDTOCreateMember builds an entities.Member from transport DTO.
func FromDTOCreateMember(src oapi.CreateMemberRequest) entities.Member {
	return entities.Member{
		Name:     src.Name,
		Age:      src.Age,
		Address:  FromDTOAddress(src.Address),
		TeamName: deref(src.TeamName),
	}
}

// ToDTOMember maps entities.Member to transport model.
func ToDTOMember(m entities.Member) oapi.Member {
	return oapi.Member{
		Id:        m.ID,
		Name:      m.Name,
		Age:       m.Age,
		Address:   ToDTOAddress(m.Address),
		TeamId:    m.TeamID,
		TeamName:  optString(m.TeamName),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		CreatedBy: m.CreatedBy,
		UpdatedBy: m.UpdatedBy,
	}
}

// ToDTOMemberTeam maps a member search row.
func ToDTOMemberTeam(m entities.MemberTeam) oapi.MemberTeam {
	return oapi.MemberTeam{
		MemberId: m.MemberID,
		Username: m.Username,
		Age:      m.Age,
		TeamId:   m.TeamID,
		TeamName: m.TeamName,
	}
}

// ToDTOMemberTeamPage maps a page of member search rows.
func ToDTOMemberTeamPage(p entities.Page[entities.MemberTeam]) oapi.MemberPage {
	mapped := entities.MapPage(p, ToDTOMemberTeam)
	return oapi.MemberPage{
		Content:       mapped.Content,
		Page:          mapped.Page,
		Size:          mapped.Size,
		TotalElements: mapped.TotalElements,
		TotalPages:    mapped.TotalPages,
		First:         mapped.First,
		Last:          mapped.Last,
		HasNext:       mapped.HasNext,
	}
}

// ToDTOMemberDto keeps id, username and team name of a search row.
func ToDTOMemberDto(m entities.MemberTeam) oapi.MemberDto {
	return oapi.MemberDto{Id: m.MemberID, Username: m.Username, TeamName: m.TeamName}
}

// ToDTOMemberDtoPage maps a page of member search rows to the short member shape.
func ToDTOMemberDtoPage(p entities.Page[entities.MemberTeam]) oapi.MemberDtoPage {
	mapped := entities.MapPage(p, ToDTOMemberDto)
	return oapi.MemberDtoPage{
		Content:       mapped.Content,
		Page:          mapped.Page,
		Size:          mapped.Size,
		TotalElements: mapped.TotalElements,
		TotalPages:    mapped.TotalPages,
		First:         mapped.First,
		Last:          mapped.Last,
		HasNext:       mapped.HasNext,
	}
}

// ToDTOTeam maps entities.Team to transport model.
func ToDTOTeam(team entities.Team) oapi.Team {
	members := make([]oapi.TeamMember, 0, len(team.Members))
	for _, m := range team.Members {
		members = append(members, oapi.TeamMember{Id: m.ID, Name: m.Name, Age: m.Age})
	}

	return oapi.Team{
		Id:        team.ID,
		Name:      team.Name,
		Members:   members,
		CreatedAt: team.CreatedAt,
		UpdatedAt: team.UpdatedAt,
		CreatedBy: team.CreatedBy,
		UpdatedBy: team.UpdatedBy,
	}
}

// ToDTOTeamList wraps teams with their count.
func ToDTOTeamList(teams []entities.Team) oapi.TeamList {
	res := make([]oapi.Team, 0, len(teams))
	for _, t := range teams {
		res = append(res, ToDTOTeam(t))
	}
	return oapi.TeamList{Count: len(res), Data: res}
}

// FromDTOCreateItem builds an entities.Item from transport DTO.
func FromDTOCreateItem(src oapi.CreateItemRequest) entities.Item {
	return entities.Item{
		Kind:          entities.ItemKind(src.Kind),
		Name:          src.Name,
		Price:         src.Price,
		StockQuantity: src.StockQuantity,
		Author:        deref(src.Author),
		ISBN:          deref(src.Isbn),
		Artist:        deref(src.Artist),
		Etc:           deref(src.Etc),
		Director:      deref(src.Director),
		Actor:         deref(src.Actor),
	}
}

// FromDTOUpdateItem builds an entities.ItemUpdate from transport DTO.
func FromDTOUpdateItem(src oapi.UpdateItemRequest) entities.ItemUpdate {
	return entities.ItemUpdate{Name: src.Name, Price: src.Price, StockQuantity: src.StockQuantity}
}

// ToDTOItem maps entities.Item to transport model.
func ToDTOItem(i entities.Item) oapi.Item {
	return oapi.Item{
		Id:            i.ID,
		Kind:          oapi.ItemKind(i.Kind),
		Name:          i.Name,
		Price:         i.Price,
		StockQuantity: i.StockQuantity,
		Author:        optString(i.Author),
		Isbn:          optString(i.ISBN),
		Artist:        optString(i.Artist),
		Etc:           optString(i.Etc),
		Director:      optString(i.Director),
		Actor:         optString(i.Actor),
	}
}

// ToDTOItemList wraps items with their count.
func ToDTOItemList(items []entities.Item) oapi.ItemList {
	res := make([]oapi.Item, 0, len(items))
	for _, i := range items {
		res = append(res, ToDTOItem(i))
	}
	return oapi.ItemList{Count: len(res), Data: res}
}

// FromDTOOrderLines maps requested order lines.
func FromDTOOrderLines(src []oapi.OrderLineRequest) []entities.OrderLine {
	res := make([]entities.OrderLine, 0, len(src))
	for _, l := range src {
		res = append(res, entities.OrderLine{ItemID: l.ItemId, Count: l.Count})
	}
	return res
}

// ToDTOOrder maps entities.Order to transport model.
func ToDTOOrder(o entities.Order) oapi.Order {
	lines := make([]oapi.OrderLine, 0, len(o.Items))
	for _, oi := range o.Items {
		lines = append(lines, oapi.OrderLine{
			Id:         oi.ID,
			ItemId:     oi.ItemID,
			ItemName:   oi.ItemName,
			OrderPrice: oi.OrderPrice,
			Count:      oi.Count,
			TotalPrice: oi.TotalPrice(),
		})
	}

	return oapi.Order{
		Id:         o.ID,
		MemberId:   o.MemberID,
		MemberName: o.MemberName,
		OrderDate:  o.OrderDate,
		Status:     oapi.OrderStatus(o.Status),
		Delivery: oapi.Delivery{
			Id:      o.Delivery.ID,
			Address: ToDTOAddress(o.Delivery.Address),
			Status:  oapi.DeliveryStatus(o.Delivery.Status),
		},
		Items:      lines,
		TotalPrice: o.TotalPrice(),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
		CreatedBy:  o.CreatedBy,
		UpdatedBy:  o.UpdatedBy,
	}
}

// FromDTOOrderSearch builds order search conditions from optional query values.
func FromDTOOrderSearch(memberName *oapi.MemberName, status *oapi.Status) entities.OrderSearch {
	search := entities.OrderSearch{MemberName: deref(memberName)}
	if status != nil && *status != "" {
		s := entities.OrderStatus(*status)
		search.Status = &s
	}
	return search
}

// ToDTOSimpleOrders maps order projections without lines.
func ToDTOSimpleOrders(list []entities.SimpleOrder) []oapi.SimpleOrder {
	res := make([]oapi.SimpleOrder, 0, len(list))
	for _, o := range list {
		res = append(res, oapi.SimpleOrder{
			OrderId:     o.OrderID,
			Name:        o.MemberName,
			OrderDate:   o.OrderDate,
			OrderStatus: oapi.OrderStatus(o.Status),
			Address:     ToDTOAddress(o.Address),
		})
	}
	return res
}

// ToDTOOrderViews maps order projections with lines.
func ToDTOOrderViews(list []entities.OrderView) []oapi.OrderView {
	res := make([]oapi.OrderView, 0, len(list))
	for _, o := range list {
		items := make([]oapi.OrderItem, 0, len(o.Items))
		for _, oi := range o.Items {
			items = append(items, oapi.OrderItem{ItemName: oi.ItemName, OrderPrice: oi.OrderPrice, Count: oi.Count})
		}
		res = append(res, oapi.OrderView{
			OrderId:     o.OrderID,
			Name:        o.MemberName,
			OrderDate:   o.OrderDate,
			OrderStatus: oapi.OrderStatus(o.Status),
			Address:     ToDTOAddress(o.Address),
			OrderItems:  items,
		})
	}
	return res
}
