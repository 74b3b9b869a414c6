package handlers

import (
	"clubtix/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Response shapes live here as plain projection functions so the models stay
// free of serialization concerns.

func userResponse(user *models.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"role":       user.Role,
		"created_at": user.CreatedAt,
	}
}

func eventResponse(event *models.Event, includeTickets bool) gin.H {
	data := gin.H{
		"id":              event.ID,
		"slug":            event.Slug,
		"title":           event.Title,
		"subtitle":        event.Subtitle,
		"description":     event.Description,
		"venue":           event.Venue,
		"address":         event.Address,
		"city":            event.City,
		"state":           event.State,
		"zip":             event.Zip,
		"start_datetime":  event.StartDatetime,
		"end_datetime":    event.EndDatetime,
		"cover_image_url": event.CoverImageURL,
		"status":          event.Status,
		"created_at":      event.CreatedAt,
		"updated_at":      event.UpdatedAt,
	}
	if includeTickets {
		tickets := make([]gin.H, 0, len(event.TicketTypes))
		for i := range event.TicketTypes {
			tickets = append(tickets, ticketTypeResponse(&event.TicketTypes[i]))
		}
		data["ticket_types"] = tickets
	}
	return data
}

func ticketTypeResponse(tt *models.TicketType) gin.H {
	return gin.H{
		"id":                 tt.ID,
		"event_id":           tt.EventID,
		"name":               tt.Name,
		"description":        tt.Description,
		"price":              tt.Price.InexactFloat64(),
		"currency":           tt.Currency,
		"quantity_total":     tt.QuantityTotal,
		"quantity_sold":      tt.QuantitySold,
		"quantity_available": tt.AvailableQuantity(),
		"sales_start":        tt.SalesStart,
		"sales_end":          tt.SalesEnd,
		"is_active":          tt.IsActive,
		"is_available":       tt.IsAvailable(),
	}
}

func cartResponse(cart *models.Cart) gin.H {
	items := make([]gin.H, 0, len(cart.Items))
	for i := range cart.Items {
		items = append(items, cartItemResponse(&cart.Items[i]))
	}
	return gin.H{
		"id":         cart.ID,
		"user_id":    cart.UserID,
		"session_id": cart.SessionID,
		"items":      items,
		"subtotal":   cart.Subtotal().InexactFloat64(),
		"created_at": cart.CreatedAt,
	}
}

func cartItemResponse(item *models.CartItem) gin.H {
	data := gin.H{
		"id":             item.ID,
		"cart_id":        item.CartID,
		"ticket_type_id": item.TicketTypeID,
		"quantity":       item.Quantity,
		"unit_price":     item.UnitPrice.InexactFloat64(),
		"subtotal":       item.Subtotal().InexactFloat64(),
	}
	if item.TicketType.ID != uuid.Nil {
		data["ticket_type"] = ticketTypeResponse(&item.TicketType)
	}
	return data
}

func orderResponse(order *models.Order) gin.H {
	items := make([]gin.H, 0, len(order.Items))
	for i := range order.Items {
		items = append(items, orderItemResponse(&order.Items[i]))
	}
	return gin.H{
		"id":               order.ID,
		"order_number":     order.OrderNumber,
		"user_id":          order.UserID,
		"email":            order.Email,
		"subtotal":         order.Subtotal.InexactFloat64(),
		"fees":             order.Fees.InexactFloat64(),
		"total":            order.Total.InexactFloat64(),
		"currency":         order.Currency,
		"status":           order.Status,
		"payment_provider": order.PaymentProvider,
		"created_at":       order.CreatedAt,
		"updated_at":       order.UpdatedAt,
		"items":            items,
	}
}

func orderItemResponse(item *models.OrderItem) gin.H {
	tickets := make([]gin.H, 0, len(item.Tickets))
	for i := range item.Tickets {
		tickets = append(tickets, ticketResponse(&item.Tickets[i]))
	}
	data := gin.H{
		"id":             item.ID,
		"order_id":       item.OrderID,
		"event_id":       item.EventID,
		"ticket_type_id": item.TicketTypeID,
		"quantity":       item.Quantity,
		"unit_price":     item.UnitPrice.InexactFloat64(),
		"subtotal":       item.Subtotal().InexactFloat64(),
		"tickets":        tickets,
	}
	if item.Event.ID != uuid.Nil {
		data["event"] = eventResponse(&item.Event, false)
	}
	if item.TicketType.ID != uuid.Nil {
		data["ticket_type"] = ticketTypeResponse(&item.TicketType)
	}
	return data
}

func ticketResponse(ticket *models.Ticket) gin.H {
	return gin.H{
		"id":            ticket.ID,
		"order_item_id": ticket.OrderItemID,
		"ticket_code":   ticket.TicketCode,
		"holder_name":   ticket.HolderName,
		"holder_email":  ticket.HolderEmail,
		"checked_in":    ticket.CheckedIn,
		"qr_code_url":   ticket.QRCodeURL,
	}
}

func newsResponse(post *models.NewsPost) gin.H {
	data := gin.H{
		"id":              post.ID,
		"slug":            post.Slug,
		"title":           post.Title,
		"excerpt":         post.Excerpt,
		"content":         post.Content,
		"cover_image_url": post.CoverImageURL,
		"published_at":    post.PublishedAt,
		"status":          post.Status,
		"author_id":       post.AuthorID,
		"created_at":      post.CreatedAt,
		"updated_at":      post.UpdatedAt,
	}
	if post.Author != nil {
		data["author"] = userResponse(post.Author)
	}
	return data
}

func clubResponse(club *models.ClubInfo) gin.H {
	return gin.H{
		"id":               club.ID,
		"name":             club.Name,
		"mission":          club.Mission,
		"about":            club.About,
		"email":            club.Email,
		"phone":            club.Phone,
		"address":          club.Address,
		"instagram_url":    club.InstagramURL,
		"tiktok_url":       club.TiktokURL,
		"banner_image_url": club.BannerImageURL,
		"updated_at":       club.UpdatedAt,
	}
}

func mediaResponse(asset *models.MediaAsset) gin.H {
	return gin.H{
		"id":          asset.ID,
		"title":       asset.Title,
		"description": asset.Description,
		"url":         asset.URL,
		"alt_text":    asset.AltText,
		"type":        asset.Type,
		"created_at":  asset.CreatedAt,
	}
}

func contactResponse(msg *models.ContactMessage) gin.H {
	return gin.H{
		"id":         msg.ID,
		"name":       msg.Name,
		"email":      msg.Email,
		"subject":    msg.Subject,
		"message":    msg.Message,
		"status":     msg.Status,
		"created_at": msg.CreatedAt,
	}
}
