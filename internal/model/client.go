package model

import (
	"fmt"

	"github.com/existflow/tutordesk/internal/validation"
)

// Client is a student managed by the user, together with the parent's
// contact details. Every setter validates its input and either applies the
// value completely or leaves the record unchanged.
type Client struct {
	id          int
	studentName string
	parentName  string
	phoneNumber string
	description string
}

// NewClient creates a validated client. The id is assigned when the client
// is added to a registry.
func NewClient(studentName, parentName, phoneNumber, description string) (*Client, error) {
	c := &Client{description: description}
	if err := c.SetStudentName(studentName); err != nil {
		return nil, err
	}
	if err := c.SetParentName(parentName); err != nil {
		return nil, err
	}
	if err := c.SetPhoneNumber(phoneNumber); err != nil {
		return nil, err
	}
	return c, nil
}

// ID returns the client's current 1-based position in its registry, or 0
// when the client has not been added to one.
func (c *Client) ID() int { return c.id }

func (c *Client) setID(id int) { c.id = id }

func (c *Client) StudentName() string { return c.studentName }
func (c *Client) ParentName() string  { return c.parentName }
func (c *Client) PhoneNumber() string { return c.phoneNumber }
func (c *Client) Description() string { return c.description }

// HasPhoneNumber reports whether a phone number was recorded
func (c *Client) HasPhoneNumber() bool { return c.phoneNumber != "" }

func (c *Client) SetStudentName(name string) error {
	if err := validation.Name(validation.FieldStudentName, name); err != nil {
		return err
	}
	c.studentName = name
	return nil
}

func (c *Client) SetParentName(name string) error {
	if err := validation.Name(validation.FieldParentName, name); err != nil {
		return err
	}
	c.parentName = name
	return nil
}

// SetPhoneNumber accepts an empty string (no phone) or exactly nine digits
func (c *Client) SetPhoneNumber(phone string) error {
	if err := validation.PhoneNumber(phone); err != nil {
		return err
	}
	c.phoneNumber = phone
	return nil
}

func (c *Client) SetDescription(description string) {
	c.description = description
}

// String renders the client the way pickers list it: "<id>. <student>"
func (c *Client) String() string {
	return fmt.Sprintf("%d. %s", c.id, c.studentName)
}
