package notification

import (
	"fmt"
	"strings"

	"github.com/adeeb-debug/baitussalambookingapp/models"
)

// AdminRequestEmail builds the notification sent to the admin inbox when
// a new booking request arrives.
func AdminRequestEmail(adminEmail, portalURL string, group models.BookingGroup) EmailMessage {
	locations := make([]string, 0, len(group.Bookings))
	for _, b := range group.Bookings {
		locations = append(locations, b.Location)
	}

	var sb strings.Builder
	sb.WriteString(`<div style="font-family: sans-serif; max-width: 600px;">`)
	sb.WriteString("<h2>New Booking Request</h2>")
	fmt.Fprintf(&sb, "<p><strong>Organizer:</strong> %s</p>", group.RequestedByName)
	fmt.Fprintf(&sb, "<p><strong>Event:</strong> %s</p>", group.EventName)
	fmt.Fprintf(&sb, "<p><strong>Locations:</strong> %s</p>", strings.Join(locations, ", "))
	fmt.Fprintf(&sb, "<p><strong>Date:</strong> %s</p>", group.Date)
	fmt.Fprintf(&sb, "<p><strong>Time:</strong> %s-%s</p>", group.FromTime, group.ToTime)
	fmt.Fprintf(&sb, `<p><a href="%s">Review Booking</a></p>`, portalURL)
	sb.WriteString("</div>")

	return EmailMessage{
		To:      adminEmail,
		Subject: "NEW BOOKING: " + group.EventName,
		HTML:    sb.String(),
	}
}

// DecisionEmail builds the final-decision notification for the requester,
// listing every location's outcome. A rejection-reason note is included
// only for members that carry one.
func DecisionEmail(group models.BookingGroup) EmailMessage {
	var list strings.Builder
	for _, b := range group.Bookings {
		color := "#2e7d32"
		if b.Status != models.StatusApproved {
			color = "#d32f2f"
		}
		fmt.Fprintf(&list, `<li style="margin-bottom: 10px;"><strong>%s:</strong> <span style="color: %s; font-weight: bold;">%s</span>`,
			b.Location, color, b.Status)
		if b.RejectionReason != "" {
			fmt.Fprintf(&list, `<br/><small style="font-style: italic;">Note: %s</small>`, b.RejectionReason)
		}
		list.WriteString("</li>")
	}

	var sb strings.Builder
	sb.WriteString(`<div style="font-family: sans-serif; max-width: 600px;">`)
	sb.WriteString("<h2>Booking Decision</h2>")
	fmt.Fprintf(&sb, "<p>Hello <strong>%s</strong>,</p>", group.RequestedByName)
	fmt.Fprintf(&sb, "<p>The admin has finished reviewing your request for <strong>%s</strong>.</p>", group.EventName)
	fmt.Fprintf(&sb, `<ul style="list-style: none; padding: 0;">%s</ul>`, list.String())
	sb.WriteString(`<p style="font-size: 0.8rem; color: #888;">This is an automated update. If you have questions, please contact the admin office.</p>`)
	sb.WriteString("</div>")

	return EmailMessage{
		To:      group.RequestedBy,
		Subject: "Update: Your Booking for " + group.EventName,
		HTML:    sb.String(),
	}
}
